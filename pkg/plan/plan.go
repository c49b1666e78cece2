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

// Package plan turns a source tree and a rule set into an ordered list of
// intended file moves. Planning never mutates the filesystem.
package plan

import (
	"fmt"
	"path/filepath"
)

// 📝 PlannedMove is one intended file move
type PlannedMove struct {
	// SourcePath is the absolute path of the file at planning time
	SourcePath string `json:"source_path"`
	// DestinationPath is organizationRoot/<rule.move_to>/<file name>
	DestinationPath string `json:"destination_path"`
	// RuleName identifies the rule that produced this entry
	RuleName string `json:"rule_name"`
}

// 📝 String returns a display form of the move
func (m PlannedMove) String() string {
	return fmt.Sprintf("[%s] %s -> %s", m.RuleName, m.SourcePath, m.DestinationPath)
}

// 📦 Plan is the ordered, not-yet-executed list of intended moves
type Plan struct {
	// SourceRoot is the absolute root the plan was built from
	SourceRoot string `json:"source_root"`
	// OrganizationRoot is the resolved absolute organization root
	OrganizationRoot string `json:"organization_root"`
	// Moves are in deterministic traversal order
	Moves []PlannedMove `json:"moves"`
}

// 🔍 Empty reports whether the plan contains no moves
func (p *Plan) Empty() bool {
	return len(p.Moves) == 0
}

// ResolveTarget computes the absolute organization root for a source root
// and a target setting. An empty target means "Organized" under the
// source root, a relative target is joined to the source root, an
// absolute target is used unchanged. Pure, no I/O.
func ResolveTarget(sourceRoot, target string) string {
	if target == "" {
		return filepath.Join(sourceRoot, "Organized")
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(sourceRoot, target)
}
