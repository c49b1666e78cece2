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

// Package ledger persists the record of the most recent apply batch so
// that it can be undone in a later invocation. Exactly one generation is
// kept: a new batch replaces the previous ledger, and undo consumes it.
package ledger

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// FileName is the ledger file kept under the organization root.
const FileName = ".sortrc.undo.json"

// 📝 MoveRecord is one successfully completed move
type MoveRecord struct {
	// FinalPath is where the file actually ended up, after any
	// collision-avoidance renaming
	FinalPath string `json:"final_path"`
	// OriginalPath is where the file was moved from
	OriginalPath string `json:"original_path"`
}

// 📦 Ledger is the ordered record of one apply batch
type Ledger struct {
	SavedAt    time.Time    `json:"saved_at"`
	SourceRoot string       `json:"source_root"`
	Records    []MoveRecord `json:"records"`
}

// 🔍 Empty reports whether there is anything to undo
func (l *Ledger) Empty() bool {
	return l == nil || len(l.Records) == 0
}

// 🔧 Manager owns the ledger file under one organization root
type Manager struct {
	path string
}

// 🏭 NewManager creates a manager for the given organization root
func NewManager(orgRoot string) *Manager {
	return &Manager{path: filepath.Join(orgRoot, FileName)}
}

// Path returns the ledger file location.
func (m *Manager) Path() string {
	return m.path
}

// 📥 Load reads the ledger from disk. A missing file is an empty ledger,
// not an error.
func (m *Manager) Load(ctx context.Context) (*Ledger, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", m.path).Msg("loading ledger")

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Ledger{}, nil
		}
		return nil, errors.Errorf("reading ledger file: %w", err)
	}

	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Errorf("parsing ledger file: %w", err)
	}
	return &l, nil
}

// 📤 Save writes the ledger atomically, replacing any previous batch.
func (m *Manager) Save(ctx context.Context, l *Ledger) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", m.path).Int("records", len(l.Records)).Msg("saving ledger")

	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return errors.Errorf("creating ledger directory: %w", err)
	}

	data, err := json.MarshalIndent(l, "", "\t")
	if err != nil {
		return errors.Errorf("marshaling ledger: %w", err)
	}

	tempPath := m.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return errors.Errorf("writing temp ledger: %w", err)
	}
	if err := os.Rename(tempPath, m.path); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp ledger: %w", err)
	}
	return nil
}

// 🗑️ Clear removes the ledger file. Clearing an absent ledger is a no-op.
func (m *Manager) Clear(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", m.path).Msg("clearing ledger")

	if err := os.Remove(m.path); err != nil && !os.IsNotExist(err) {
		return errors.Errorf("removing ledger file: %w", err)
	}
	return nil
}
