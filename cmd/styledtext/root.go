package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/styledtext/internal/config"
	"github.com/alexisbeaulieu97/styledtext/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

// app carries state shared by the subcommands: persistent flags and the
// logger created once flag parsing is done.
type app struct {
	flags rootFlags
	log   *logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "styledtext",
		Short:         "Render syntax-highlighted text through styledtext backends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "info"
			if a.flags.verbose {
				level = "debug"
			}
			log, err := logger.New(logger.Options{
				Level:         level,
				HumanReadable: true,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "Path to a YAML configuration file")

	cmd.AddCommand(newCatCmd(a))
	cmd.AddCommand(newViewCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig returns the YAML configuration when --config was given and the
// built-in defaults otherwise.
func (a *app) loadConfig() (*config.Config, error) {
	if a.flags.configPath == "" {
		return config.Default(), nil
	}
	return config.ParseConfig(a.flags.configPath)
}
