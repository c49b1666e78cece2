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

package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func init() {
	// Deterministic output regardless of the test terminal.
	color.NoColor = true
}

func TestFormatItem(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		rule    string
		moved   bool
		skipped bool
		failed  bool
		want    string
	}{
		{name: "moved", path: "a.jpg", rule: "img", moved: true, want: "✓"},
		{name: "skipped", path: "b.pdf", rule: "doc", skipped: true, want: "-"},
		{name: "failed", path: "c.jpg", rule: "img", failed: true, want: "✗"},
		{name: "unknown", path: "d.txt", rule: "", want: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatItem(tt.path, tt.rule, tt.moved, tt.skipped, tt.failed)
			assert.Contains(t, got, tt.want, "prefix symbol should match the outcome")
			assert.Contains(t, got, tt.path, "the path should be displayed")
		})
	}
}

func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    string
	}{
		{name: "zero_of_zero", current: 0, total: 0, want: "✅ Progress: 0/0 (0%)"},
		{name: "halfway", current: 1, total: 2, want: "⏳ Progress: 1/2 (50%)"},
		{name: "complete", current: 2, total: 2, want: "✅ Progress: 2/2 (100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProgress(tt.current, tt.total), "progress message should match")
		})
	}
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(2, 1, 0)
	assert.Contains(t, got, "moved: 2", "moved counter should be displayed")
	assert.Contains(t, got, "skipped: 1", "skipped counter should be displayed")
	assert.Contains(t, got, "failed: 0", "failed counter should be displayed")
}

func TestFormatError(t *testing.T) {
	assert.Empty(t, FormatError(nil), "nil errors format to nothing")
	assert.Equal(t, "❌ Error: boom", FormatError(errors.New("boom")), "errors get the error prefix")
}
