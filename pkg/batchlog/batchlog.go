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

// Package batchlog writes the durable plain-text log for one batch. One
// file per batch, never mutated after Close, parsable by line prefix
// (MOVED / SKIPPED / FAILED).
package batchlog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/walteh/sortrc/pkg/fsop"
	"gitlab.com/tozd/go/errors"
)

const timestampFormat = "20060102_150405"

// 📝 Writer owns one batch log file from header to summary footer
type Writer struct {
	path string
	file *os.File
	buf  *bufio.Writer

	moved   int
	skipped int
	failed  int
}

// 🏭 New creates the log directory and opens a timestamped log file with
// the batch header. The label is "Apply" or "Undo".
func New(dir, label, sourceRoot string, now time.Time) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Errorf("creating log directory: %w", err)
	}

	ts := now.Format(timestampFormat)
	path, err := fsop.AvailablePath(filepath.Join(dir, fmt.Sprintf("sortrc_%s.txt", ts)))
	if err != nil {
		return nil, errors.Errorf("resolving log file name: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, errors.Errorf("creating log file: %w", err)
	}

	w := &Writer{
		path: path,
		file: file,
		buf:  bufio.NewWriter(file),
	}
	fmt.Fprintf(w.buf, "[%s] %s\nSource: %s\n\n", label, ts, sourceRoot)
	return w, nil
}

// Path returns the log file location.
func (w *Writer) Path() string {
	return w.path
}

// ✅ Moved records a completed move
func (w *Writer) Moved(source, final string) {
	w.moved++
	fmt.Fprintf(w.buf, "MOVED\t%s -> %s\n", source, final)
}

// ⏭️ Skipped records an item left in place
func (w *Writer) Skipped(source, reason string) {
	w.skipped++
	fmt.Fprintf(w.buf, "SKIPPED\t%s (%s)\n", source, reason)
}

// ❌ Failed records a per-item failure with its classification
func (w *Writer) Failed(source, destination string, kind fsop.ErrorKind, err error) {
	w.failed++
	fmt.Fprintf(w.buf, "FAILED\t%s -> %s (%s: %v)\n", source, destination, kind, err)
}

// 🔒 Close writes the summary footer and flushes the file to storage.
// After Close the artifact is never touched again.
func (w *Writer) Close() error {
	fmt.Fprintf(w.buf, "\nSUMMARY\nMoved: %d  Skipped: %d  Failed: %d\n", w.moved, w.skipped, w.failed)

	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return errors.Errorf("flushing log: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		w.file.Close()
		return errors.Errorf("syncing log: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return errors.Errorf("closing log: %w", err)
	}
	return nil
}
