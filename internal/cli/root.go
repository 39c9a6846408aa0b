// Package cli holds the cobra commands of the boxtable binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/boxtable/internal/config"
	"github.com/bjaus/boxtable/internal/logger"
)

// NewRootCommand returns the boxtable command with every subcommand attached.
// Each run binds BOXTABLE_* variables to unset flags and stores a diagnostics
// logger in the command context.
func NewRootCommand(version string) *cobra.Command {
	var logLevel string
	log := logger.Discard()

	root := &cobra.Command{
		Use:   "boxtable",
		Short: "Draw box-drawing tables from delimited text",
		Long: `boxtable renders rows of delimited text inside fixed-width box-drawing
tables. Overlong cells are truncated with a "~" marker or wrapped across
several lines.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.BindEnv(cmd); err != nil {
				return err
			}
			if logLevel != "off" {
				lvl, err := logger.ParseLevel(logLevel)
				if err != nil {
					return err
				}
				log = logger.New(cmd.ErrOrStderr(), lvl)
			}
			cmd.SetContext(logger.WithLogger(cmd.Context(), log.WithValues(logger.CommandKey, cmd.Name())))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "diagnostics level: debug, info, warn, error, off")

	root.AddCommand(NewRenderCommand())
	root.AddCommand(NewLayoutCommand())
	root.AddCommand(NewGlyphsCommand())
	return root
}
