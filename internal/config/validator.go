package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-playground/validator/v10"

	stserrors "github.com/alexisbeaulieu97/styledtext/pkg/errors"
)

// Backends lists the render targets the CLI can write to.
var Backends = []string{"ansi", "pdf"}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("backend", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			for _, b := range Backends {
				if name == b {
					return true
				}
			}
			return false
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := styles.Registry[fl.Field().String()]
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// ValidateConfig checks field constraints and reports the first violation as
// a ValidationError.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return stserrors.NewValidationError("", "configuration is empty", nil)
	}

	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return stserrors.NewValidationError("", err.Error(), err)
	}

	fe := fieldErrors[0]
	field := strings.ToLower(fe.Field())
	return stserrors.NewValidationError(field, describeViolation(field, fe), err)
}

func describeViolation(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "backend":
		return fmt.Sprintf("unknown backend %q, expected one of: %s", fe.Value(), strings.Join(Backends, ", "))
	case "theme":
		return fmt.Sprintf("unknown theme %q, expected one of: %s", fe.Value(), strings.Join(themeNames(), ", "))
	case "oneof":
		return fmt.Sprintf("invalid value %q, expected one of: %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}

func themeNames() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
