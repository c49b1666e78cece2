// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/batchlog"
	"github.com/walteh/sortrc/pkg/fsop"
	"github.com/walteh/sortrc/pkg/ledger"
	"github.com/walteh/sortrc/pkg/plan"
	"gitlab.com/tozd/go/errors"
)

// Apply implements Operator.Apply. Items are processed strictly in plan
// order; one item's failure never aborts the batch. Batch-level failures
// (organization root, log artifact, ledger) are returned as errors.
func (o *operator) Apply(ctx context.Context, p *plan.Plan) (*ApplyResult, error) {
	logger := zerolog.Ctx(ctx)

	if p == nil {
		return nil, errors.Errorf("plan is required")
	}

	if err := os.MkdirAll(o.orgRoot, 0755); err != nil {
		return nil, errors.Errorf("creating organization root: %w", err)
	}

	log, err := batchlog.New(o.logDir, "Apply", o.sourceRoot, o.now())
	if err != nil {
		return nil, errors.Errorf("opening batch log: %w", err)
	}

	result := &ApplyResult{
		Total:      len(p.Moves),
		LogPath:    log.Path(),
		LedgerPath: o.ledger.Path(),
	}
	led := &ledger.Ledger{
		SavedAt:    o.now(),
		SourceRoot: o.sourceRoot,
	}

	for i, mv := range p.Moves {
		o.applyOne(ctx, mv, result, led, log)
		o.progress(i+1, result.Total)
	}

	if err := log.Close(); err != nil {
		return nil, errors.Errorf("closing batch log: %w", err)
	}
	if err := o.ledger.Save(ctx, led); err != nil {
		return nil, errors.Errorf("saving ledger: %w", err)
	}

	logger.Info().
		Int("moved", result.Moved).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Str("log", result.LogPath).
		Msg("apply batch complete")

	return result, nil
}

// applyOne processes a single planned move, recording its outcome into
// the result, the ledger, and the batch log.
func (o *operator) applyOne(ctx context.Context, mv plan.PlannedMove, result *ApplyResult, led *ledger.Ledger, log *batchlog.Writer) {
	logger := zerolog.Ctx(ctx)

	if err := os.MkdirAll(filepath.Dir(mv.DestinationPath), 0755); err != nil {
		o.fail(ctx, result, log, mv.SourcePath, mv.DestinationPath,
			errors.Errorf("creating destination directory: %w", err))
		return
	}

	if fsop.SameFile(mv.SourcePath, mv.DestinationPath) {
		logger.Debug().Str("path", mv.SourcePath).Msg("already at destination")
		result.Skipped = append(result.Skipped, SkippedItem{Path: mv.SourcePath, Reason: "already at destination"})
		log.Skipped(mv.SourcePath, "already at destination")
		return
	}

	finalPath, err := fsop.AvailablePath(mv.DestinationPath)
	if err != nil {
		o.fail(ctx, result, log, mv.SourcePath, mv.DestinationPath,
			errors.Errorf("resolving destination name: %w", err))
		return
	}
	if err := fsop.MoveFile(mv.SourcePath, finalPath); err != nil {
		o.fail(ctx, result, log, mv.SourcePath, finalPath, err)
		return
	}

	result.Moved++
	led.Records = append(led.Records, ledger.MoveRecord{
		FinalPath:    finalPath,
		OriginalPath: mv.SourcePath,
	})
	log.Moved(mv.SourcePath, finalPath)
	logger.Debug().
		Str("rule", mv.RuleName).
		Str("from", mv.SourcePath).
		Str("to", finalPath).
		Msg("moved")
}

// fail records one classified per-item failure.
func (o *operator) fail(ctx context.Context, result *ApplyResult, log *batchlog.Writer, src, dst string, err error) {
	kind := fsop.Classify(err)
	result.Failed = append(result.Failed, FailedItem{
		SourcePath:      src,
		DestinationPath: dst,
		Kind:            kind,
		Err:             err,
	})
	log.Failed(src, dst, kind, err)
	zerolog.Ctx(ctx).Warn().
		Str("from", src).
		Str("to", dst).
		Str("kind", kind.String()).
		Err(err).
		Msg("move failed")
}
