package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/commands"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/config"
	"github.com/walteh/sortrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	sourceDir  string
	debug      bool
)

// newRootCmd assembles the root command with shared options
func newRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:   "sortrc",
		Short: "Organize files into a structured layout using rules",
		Long: `sortrc classifies files in a directory tree by extension and moves
them into a structured target layout. Every batch is logged, never
overwrites anything, and can be undone in one step.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			ctx := cmd.Context()

			// version needs no config
			if cmd.Name() == "version" {
				return nil
			}

			cfg, err := config.Load(ctx, configFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			ro.Config = cfg
			ro.SourceRoot = sourceDir
			ro.UserLogger = status.NewUserLogger(ctx)
			return nil
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewPlanCmd(ro))
	cmd.AddCommand(commands.NewApplyCmd(ro))
	cmd.AddCommand(commands.NewUndoCmd(ro))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".sortrc.yaml", "config file path")
	cmd.PersistentFlags().StringVarP(&sourceDir, "source", "s", ".", "source directory to organize")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
