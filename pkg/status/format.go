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

// Package status formats batch outcomes for terminal display.
package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	itemIndent = 4  // spaces to indent item entries
	nameWidth  = 35 // Base width for file name
	ruleWidth  = 15 // Width for rule name
)

// 🎯 FormatItem formats one processed item for display
func FormatItem(path, rule string, moved, skipped, failed bool) string {
	var prefix string
	switch {
	case moved:
		prefix = color.GreenString("✓")
	case skipped:
		prefix = color.HiBlackString("-")
	case failed:
		prefix = color.RedString("✗")
	default:
		prefix = color.YellowString("?")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, path)
	rulePart := fmt.Sprintf("%-*s", ruleWidth, rule)

	return fmt.Sprintf("%s%s %s %s",
		strings.Repeat(" ", itemIndent),
		prefix,
		namePart,
		rulePart,
	)
}

// 📈 FormatProgress formats a progress message with percentage
func FormatProgress(current, total int) string {
	var percentage float64
	if total == 0 {
		percentage = 0
		if current > 0 {
			percentage = 100
		}
	} else {
		percentage = float64(current) / float64(total) * 100
	}

	if current >= total {
		return fmt.Sprintf("✅ Progress: %d/%d (%.0f%%)", current, total, percentage)
	}
	return fmt.Sprintf("⏳ Progress: %d/%d (%.0f%%)", current, total, percentage)
}

// 📊 FormatSummary formats the batch counters
func FormatSummary(moved, skipped, failed int) string {
	parts := []string{
		color.GreenString("moved: %d", moved),
		color.HiBlackString("skipped: %d", skipped),
	}
	if failed > 0 {
		parts = append(parts, color.RedString("failed: %d", failed))
	} else {
		parts = append(parts, color.HiBlackString("failed: 0"))
	}
	return strings.Join(parts, "   ")
}

// ❌ FormatError formats an error message
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
