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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_config",
			cfg: Config{
				Rules: []Rule{
					{Name: "img", Match: Match{Ext: []string{".JPG", "png"}}, Action: Action{MoveTo: "Images"}},
					{Name: "doc", Match: Match{Ext: []string{".pdf"}}, Action: Action{MoveTo: "PDFs"}},
				},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{".jpg", ".png"}, cfg.Rules[0].Match.Ext, "extensions should be normalized")
				assert.Equal(t, "Images", cfg.Rules[0].Action.MoveTo, "move_to should be unchanged")
			},
		},
		{
			name:        "no_rules",
			cfg:         Config{},
			wantErr:     true,
			errContains: "at least one rule",
		},
		{
			name: "missing_rule_name",
			cfg: Config{
				Rules: []Rule{{Match: Match{Ext: []string{".jpg"}}, Action: Action{MoveTo: "Images"}}},
			},
			wantErr:     true,
			errContains: "name is required",
		},
		{
			name: "duplicate_rule_name",
			cfg: Config{
				Rules: []Rule{
					{Name: "img", Match: Match{Ext: []string{".jpg"}}, Action: Action{MoveTo: "Images"}},
					{Name: "img", Match: Match{Ext: []string{".png"}}, Action: Action{MoveTo: "Images"}},
				},
			},
			wantErr:     true,
			errContains: "duplicate name",
		},
		{
			name: "missing_move_to",
			cfg: Config{
				Rules: []Rule{{Name: "img", Match: Match{Ext: []string{".jpg"}}}},
			},
			wantErr:     true,
			errContains: "move_to is required",
		},
		{
			name: "absolute_move_to",
			cfg: Config{
				Rules: []Rule{{Name: "img", Match: Match{Ext: []string{".jpg"}}, Action: Action{MoveTo: "/etc"}}},
			},
			wantErr:     true,
			errContains: "must be relative",
		},
		{
			name: "move_to_escapes_root",
			cfg: Config{
				Rules: []Rule{{Name: "img", Match: Match{Ext: []string{".jpg"}}, Action: Action{MoveTo: "../elsewhere"}}},
			},
			wantErr:     true,
			errContains: "escapes",
		},
		{
			name: "empty_extension",
			cfg: Config{
				Rules: []Rule{{Name: "img", Match: Match{Ext: []string{"  "}}, Action: Action{MoveTo: "Images"}}},
			},
			wantErr:     true,
			errContains: "empty extension",
		},
		{
			name: "empty_extension_set_is_allowed",
			cfg: Config{
				Rules: []Rule{{Name: "never", Action: Action{MoveTo: "Never"}}},
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Rules[0].Match.Ext, "empty set should survive validation")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err, "Validate() should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error message should match")
				return
			}
			require.NoError(t, err, "Validate() should succeed")
			if tt.check != nil {
				tt.check(t, &tt.cfg)
			}
		})
	}
}

func TestMatchRule(t *testing.T) {
	cfg := Config{
		Rules: []Rule{
			{Name: "img", Match: Match{Ext: []string{".jpg", ".png"}}, Action: Action{MoveTo: "Images"}},
			{Name: "img2", Match: Match{Ext: []string{".jpg"}}, Action: Action{MoveTo: "MoreImages"}},
			{Name: "doc", Match: Match{Ext: []string{".pdf"}}, Action: Action{MoveTo: "PDFs"}},
			{Name: "never", Match: Match{}, Action: Action{MoveTo: "Never"}},
		},
	}
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name     string
		fileName string
		wantRule string
	}{
		{name: "first_match_wins", fileName: "photo.jpg", wantRule: "img"},
		{name: "case_insensitive", fileName: "PHOTO.JPG", wantRule: "img"},
		{name: "second_rule", fileName: "report.pdf", wantRule: "doc"},
		{name: "no_match", fileName: "notes.txt", wantRule: ""},
		{name: "no_extension", fileName: "Makefile", wantRule: ""},
		{name: "dotfile", fileName: ".gitignore", wantRule: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := cfg.MatchRule(tt.fileName)
			if tt.wantRule == "" {
				assert.Nil(t, rule, "no rule should match")
				return
			}
			require.NotNil(t, rule, "a rule should match")
			assert.Equal(t, tt.wantRule, rule.Name, "matched rule should be the first in declared order")
		})
	}
}
