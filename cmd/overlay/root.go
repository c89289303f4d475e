package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-overlay/internal/config"
	"github.com/grindlemire/go-overlay/internal/debug"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "overlay",
		Short:         "Place floating panels and trap keyboard focus",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				debug.SetOutput(cmd.ErrOrStderr(), zerolog.DebugLevel, true)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log placement and focus decisions to stderr")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "YAML file with placement and key-binding settings")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig returns the configuration named by --config, or an empty one.
func (f *rootFlags) loadConfig() (*config.File, error) {
	if f.configPath == "" {
		return &config.File{}, nil
	}
	return config.Load(f.configPath)
}
