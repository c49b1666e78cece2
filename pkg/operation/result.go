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

import "github.com/walteh/sortrc/pkg/fsop"

// ⏭️ SkippedItem is one item left in place
type SkippedItem struct {
	Path   string
	Reason string
}

// ❌ FailedItem is one per-item failure, classified by kind
type FailedItem struct {
	SourcePath      string
	DestinationPath string
	Kind            fsop.ErrorKind
	Err             error
}

// 📊 ApplyResult aggregates the outcomes of one apply batch
type ApplyResult struct {
	// Total is the number of plan items processed
	Total int
	// Moved counts successful moves
	Moved int
	// Skipped lists items already at their destination
	Skipped []SkippedItem
	// Failed lists per-item failures that did not abort the batch
	Failed []FailedItem
	// LogPath is the batch log artifact
	LogPath string
	// LedgerPath is the saved undo ledger
	LedgerPath string
}

// 📊 UndoResult aggregates the outcomes of one undo batch
type UndoResult struct {
	// NothingToUndo is set when the ledger was empty; not an error
	NothingToUndo bool
	// Restored counts files moved back
	Restored int
	// Failed lists per-item failures that did not abort the batch
	Failed []FailedItem
	// LogPath is the batch log artifact, empty when nothing was undone
	LogPath string
}
