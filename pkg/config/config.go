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

package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 Match describes which files a rule applies to
type Match struct {
	// Ext is the set of file extensions (with or without leading dot)
	Ext []string `json:"ext" yaml:"ext" hcl:"ext,attr"`
}

// 📦 Action describes what happens to a matched file
type Action struct {
	// MoveTo is the subdirectory under the organization root
	MoveTo string `json:"move_to" yaml:"move_to" hcl:"move_to,attr"`
}

// 📝 Rule is one ordered classification rule
type Rule struct {
	Name   string `json:"name" yaml:"name" hcl:"name,label"`
	Match  Match  `json:"match" yaml:"match" hcl:"match,block"`
	Action Action `json:"action" yaml:"action" hcl:"action,block"`
}

// 📚 Config represents the complete sortrc configuration
type Config struct {
	// Target is the organization root: absolute, or relative to the
	// source root. Empty means "Organized" under the source root.
	Target string `json:"target,omitempty" yaml:"target,omitempty" hcl:"target,optional"`

	// Rules are evaluated in declared order; first match wins.
	Rules []Rule `json:"rules" yaml:"rules" hcl:"rule,block"`

	// Ignore holds doublestar glob patterns (relative to the source
	// root) excluded from planning.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty" hcl:"ignore,optional"`

	// LogDir overrides where batch logs are written. Empty means
	// "logs" under the organization root. The resolved directory is
	// excluded from planning, so log files are never organized even
	// when a rule matches them.
	LogDir string `json:"log_dir,omitempty" yaml:"log_dir,omitempty" hcl:"log_dir,optional"`
}

// 🔍 Validate checks the configuration and normalizes it in place
func (cfg *Config) Validate() error {
	if len(cfg.Rules) == 0 {
		return errors.Errorf("at least one rule is required")
	}

	seen := make(map[string]bool, len(cfg.Rules))
	for i := range cfg.Rules {
		r := &cfg.Rules[i]
		if r.Name == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if seen[r.Name] {
			return errors.Errorf("rule %q: duplicate name", r.Name)
		}
		seen[r.Name] = true

		if r.Action.MoveTo == "" {
			return errors.Errorf("rule %q: action.move_to is required", r.Name)
		}
		if filepath.IsAbs(r.Action.MoveTo) {
			return errors.Errorf("rule %q: action.move_to must be relative, got %q", r.Name, r.Action.MoveTo)
		}
		r.Action.MoveTo = filepath.Clean(r.Action.MoveTo)
		if r.Action.MoveTo == ".." || strings.HasPrefix(r.Action.MoveTo, ".."+string(filepath.Separator)) {
			return errors.Errorf("rule %q: action.move_to escapes the organization root", r.Name)
		}

		// Normalize extensions to lower case with a leading dot. An
		// empty set is allowed and simply never matches.
		for j, ext := range r.Match.Ext {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" || ext == "." {
				return errors.Errorf("rule %q: empty extension", r.Name)
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			r.Match.Ext[j] = ext
		}
	}

	return nil
}

// 🎯 MatchRule returns the first rule whose extension set contains the
// file's extension (case-insensitive), or nil when no rule matches.
func (cfg *Config) MatchRule(fileName string) *Rule {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return nil
	}
	for i := range cfg.Rules {
		for _, e := range cfg.Rules[i].Match.Ext {
			if e == ext {
				return &cfg.Rules[i]
			}
		}
	}
	return nil
}

// 📝 String returns a short description of the config
func (cfg *Config) String() string {
	target := cfg.Target
	if target == "" {
		target = "Organized"
	}
	return fmt.Sprintf("%d rules -> %s", len(cfg.Rules), target)
}
