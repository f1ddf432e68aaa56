package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnsupportedBackend(t *testing.T) {
	t.Parallel()

	err := NewUnsupportedBackend("svg")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedBackend)
	assert.Contains(t, err.Error(), `"svg"`)
}

func TestParseError(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("yaml: bad indent")
	err := NewParseError("config.yaml", 7, cause)

	assert.EqualError(t, err, "parse error: config.yaml:7: yaml: bad indent")
	assert.ErrorIs(t, err, cause)

	err = NewParseError("config.yaml", 0, cause)
	assert.EqualError(t, err, "parse error: config.yaml: yaml: bad indent")
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := NewValidationError("backend", "must be one of ansi, pdf", nil)
	assert.EqualError(t, err, "validation error: backend: must be one of ansi, pdf")

	err = NewValidationError("", "empty config", nil)
	assert.EqualError(t, err, "validation error: empty config")
}
