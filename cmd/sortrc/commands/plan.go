package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sortrc/cmd/sortrc/opts"
	"github.com/walteh/sortrc/pkg/operation"
	"github.com/walteh/sortrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates a new plan command
func NewPlanCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the moves the current rules would make",
		Long: `Plan walks the source tree and shows which files would move where,
without touching anything. It will:
1. Match every file against the rules in declared order
2. Skip anything already under the organization root
3. Print the resulting moves in execution order`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "plan").Logger().WithContext(ctx)

			op, err := operation.New(operation.Options{
				Config:     ro.Config,
				SourceRoot: ro.SourceRoot,
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

			ro.UserLogger.LogBatchChange(fmt.Sprintf("Planned %d moves into %s", len(p.Moves), p.OrganizationRoot))
			for _, mv := range p.Moves {
				rel, err := filepath.Rel(p.SourceRoot, mv.SourcePath)
				if err != nil {
					rel = mv.SourcePath
				}
				fmt.Println(status.FormatItem(rel, mv.RuleName, true, false, false))
			}
			fmt.Println()
			fmt.Println("Run \"sortrc apply\" to perform these moves.")

			return nil
		},
	}

	return cmd
}
