package main

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
	"github.com/spf13/cobra"

	stserrors "github.com/alexisbeaulieu97/styledtext/pkg/errors"
	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext/ansi"
	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext/pdf"
)

type catFlags struct {
	backend string
	theme   string
	color   string
	lexer   string
	output  string
}

func newCatCmd(a *app) *cobra.Command {
	flags := &catFlags{}

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Highlight a file and render it through a backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(cmd, a, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.backend, "backend", "", "Render backend (ansi, pdf)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "Chroma highlighting theme")
	cmd.Flags().StringVar(&flags.color, "color", "", "ANSI color mode (auto, always, never)")
	cmd.Flags().StringVar(&flags.lexer, "lexer", "", "Force a specific lexer instead of detecting one")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (required for the pdf backend)")

	return cmd
}

func runCat(cmd *cobra.Command, a *app, flags *catFlags, path string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	backend := override(cfg.Backend, flags.backend)
	theme := override(cfg.Theme, flags.theme)
	colorMode := override(cfg.Color, flags.color)

	log := a.log.WithFields(map[string]any{"path": path, "backend": backend, "theme": theme})
	log.Debug("highlighting file")

	fragments, err := highlightFile(path, theme, flags.lexer)
	if err != nil {
		return err
	}

	switch backend {
	case "ansi":
		out := cmd.OutOrStdout()
		renderer := ansi.Renderer{Profile: pickProfile(out, colorMode)}
		return renderer.RenderAll(out, fragments)
	case "pdf":
		if flags.output == "" {
			return stserrors.NewValidationError("output", "the pdf backend requires --output", nil)
		}
		return writePDF(flags.output, fragments)
	default:
		return stserrors.NewUnsupportedBackend(backend)
	}
}

func writePDF(path string, fragments []styledtext.Text) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont("Courier", "", 10)
	doc.AddPage()

	if err := pdf.RenderAll(doc, 5, fragments); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := doc.Output(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func override(base, flag string) string {
	if flag != "" {
		return flag
	}
	return base
}
