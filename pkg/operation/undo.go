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
	"gitlab.com/tozd/go/errors"
)

// Undo implements Operator.Undo. The ledger is processed in reverse
// order (last moved, first restored) so that restores never depend on
// directory structure a later-undone entry is about to vacate. The
// ledger is consumed exactly once: after any undo, a second call
// reports nothing to undo.
func (o *operator) Undo(ctx context.Context) (*UndoResult, error) {
	logger := zerolog.Ctx(ctx)

	led, err := o.ledger.Load(ctx)
	if err != nil {
		return nil, errors.Errorf("loading ledger: %w", err)
	}
	if led.Empty() {
		logger.Info().Msg("nothing to undo")
		return &UndoResult{NothingToUndo: true}, nil
	}

	log, err := batchlog.New(o.logDir, "Undo", led.SourceRoot, o.now())
	if err != nil {
		return nil, errors.Errorf("opening batch log: %w", err)
	}

	result := &UndoResult{LogPath: log.Path()}
	total := len(led.Records)

	for i := total - 1; i >= 0; i-- {
		rec := led.Records[i]

		if err := os.MkdirAll(filepath.Dir(rec.OriginalPath), 0755); err != nil {
			o.failRestore(ctx, result, log, rec.FinalPath, rec.OriginalPath,
				errors.Errorf("creating original directory: %w", err))
			o.progress(total-i, total)
			continue
		}

		restorePath, err := fsop.AvailableRestorePath(rec.OriginalPath)
		if err != nil {
			o.failRestore(ctx, result, log, rec.FinalPath, rec.OriginalPath,
				errors.Errorf("resolving restore name: %w", err))
			o.progress(total-i, total)
			continue
		}
		if err := fsop.MoveFile(rec.FinalPath, restorePath); err != nil {
			o.failRestore(ctx, result, log, rec.FinalPath, restorePath, err)
			o.progress(total-i, total)
			continue
		}

		result.Restored++
		log.Moved(rec.FinalPath, restorePath)
		logger.Debug().
			Str("from", rec.FinalPath).
			Str("to", restorePath).
			Msg("restored")
		o.progress(total-i, total)
	}

	if err := log.Close(); err != nil {
		return nil, errors.Errorf("closing batch log: %w", err)
	}
	if err := o.ledger.Clear(ctx); err != nil {
		return nil, errors.Errorf("clearing ledger: %w", err)
	}

	logger.Info().
		Int("restored", result.Restored).
		Int("failed", len(result.Failed)).
		Str("log", result.LogPath).
		Msg("undo batch complete")

	return result, nil
}

// failRestore records one classified per-item restore failure.
func (o *operator) failRestore(ctx context.Context, result *UndoResult, log *batchlog.Writer, from, to string, err error) {
	kind := fsop.Classify(err)
	result.Failed = append(result.Failed, FailedItem{
		SourcePath:      from,
		DestinationPath: to,
		Kind:            kind,
		Err:             err,
	})
	log.Failed(from, to, kind, err)
	zerolog.Ctx(ctx).Warn().
		Str("from", from).
		Str("to", to).
		Str("kind", kind.String()).
		Err(err).
		Msg("restore failed")
}
