package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext"
	"github.com/alexisbeaulieu97/styledtext/pkg/styledtext/gloss"
)

func newViewCmd(a *app) *cobra.Command {
	flags := &catFlags{}

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Browse a highlighted file in an interactive pager",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(a, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.theme, "theme", "", "Chroma highlighting theme")
	cmd.Flags().StringVar(&flags.lexer, "lexer", "", "Force a specific lexer instead of detecting one")

	return cmd
}

func runView(a *app, flags *catFlags, path string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	theme := override(cfg.Theme, flags.theme)

	fragments, err := highlightFile(path, theme, flags.lexer)
	if err != nil {
		return err
	}

	model := viewModel{
		title:   path,
		content: renderContent(fragments),
	}
	a.log.WithFields(map[string]any{"path": path}).Debug("starting pager")

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}

// renderContent flattens the fragments into one styled string for the
// viewport, using the gloss adapter at full color depth.
func renderContent(fragments []styledtext.Text) string {
	var sb strings.Builder
	renderer := gloss.NewRenderer(&sb, termenv.TrueColor)
	// strings.Builder writes cannot fail.
	_ = renderer.RenderAll(fragments)
	return sb.String()
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("15")).
	Background(lipgloss.Color("4")).
	Padding(0, 1)

type viewModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m viewModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return titleStyle.Render(m.title) + "\n" + m.viewport.View()
}
