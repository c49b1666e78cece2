package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/operation"
	"github.com/walteh/sortrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewUndoCmd creates a new undo command
func NewUndoCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the most recent apply batch",
		Long: `Undo moves every file from the last apply back to where it came
from, last moved first. It will:
1. Load the ledger written by the last apply
2. Restore each file, renaming instead of ever overwriting
3. Consume the ledger so the batch is undone at most once`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "undo").Logger().WithContext(ctx)

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				SourceRoot: ro.SourceRoot,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			result, err := op.Undo(ctx)
			if err != nil {
				return errors.Errorf("undoing batch: %w", err)
			}

			if result.NothingToUndo {
				ro.UserLogger.LogBatchChange("Nothing to undo.")
				return nil
			}

			for _, item := range result.Failed {
				ro.UserLogger.LogItemChange(status.ItemChange{
					Type:        status.ItemFailed,
					Path:        item.SourcePath,
					Description: item.Kind.String(),
					Error:       item.Err,
				})
			}

			fmt.Printf("Restored: %d   Failed: %d\n", result.Restored, len(result.Failed))
			ro.UserLogger.LogArtifact("batch log", result.LogPath)

			return nil
		},
	}

	return cmd
}
