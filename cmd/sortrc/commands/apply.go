package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/operation"
	"github.com/walteh/sortrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewApplyCmd creates a new apply command
func NewApplyCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Plan and execute the moves for the current rules",
		Long: `Apply organizes the source tree. It will:
1. Build a fresh plan from the current rules
2. Move each file, renaming instead of ever overwriting
3. Write a durable batch log and an undo ledger`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			// The bar is started once the plan size is known.
			var bar *pterm.ProgressbarPrinter

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				SourceRoot: ro.SourceRoot,
				OnProgress: func(completed, total int) {
					if bar != nil {
						bar.Increment()
					}
				},
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			p, err := op.Plan(ctx)
			if err != nil {
				return errors.Errorf("planning moves: %w", err)
			}
			if p.Empty() {
				ro.UserLogger.LogBatchChange("No files to move for the current rules.")
				return nil
			}

			bar, err = pterm.DefaultProgressbar.WithTotal(len(p.Moves)).WithTitle("Moving").Start()
			if err != nil {
				bar = nil
			}

			result, err := op.Apply(ctx, p)
			if bar != nil {
				_, _ = bar.Stop()
			}
			if err != nil {
				return errors.Errorf("applying moves: %w", err)
			}

			for _, item := range result.Skipped {
				ro.UserLogger.LogItemChange(status.ItemChange{
					Type:        status.ItemSkipped,
					Path:        item.Path,
					Description: item.Reason,
				})
			}
			for _, item := range result.Failed {
				ro.UserLogger.LogItemChange(status.ItemChange{
					Type:        status.ItemFailed,
					Path:        item.SourcePath,
					Description: item.Kind.String(),
					Error:       item.Err,
				})
			}

			fmt.Println(status.FormatSummary(result.Moved, len(result.Skipped), len(result.Failed)))
			ro.UserLogger.LogArtifact("batch log", result.LogPath)
			ro.UserLogger.LogBatchChange("Run \"sortrc undo\" to put everything back.")

			return nil
		},
	}

	return cmd
}
