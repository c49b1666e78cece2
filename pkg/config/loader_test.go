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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:     "yaml_config",
			fileName: ".sortrc.yaml",
			content: `
target: Sorted
ignore:
  - "**/.git/**"
rules:
  - name: img
    match:
      ext: [".jpg", ".png"]
    action:
      move_to: Images
  - name: doc
    match:
      ext: [".pdf"]
    action:
      move_to: PDFs
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Sorted", cfg.Target, "target should match")
				require.Len(t, cfg.Rules, 2, "should have 2 rules")
				assert.Equal(t, "img", cfg.Rules[0].Name, "first rule name should match")
				assert.Equal(t, []string{".jpg", ".png"}, cfg.Rules[0].Match.Ext, "extensions should match")
				assert.Equal(t, "Images", cfg.Rules[0].Action.MoveTo, "move_to should match")
				assert.Equal(t, []string{"**/.git/**"}, cfg.Ignore, "ignore patterns should match")
			},
		},
		{
			name:     "json_config",
			fileName: "sortrc.json",
			content: `{
  "rules": [
    {"name": "img", "match": {"ext": [".jpg"]}, "action": {"move_to": "Images"}}
  ]
}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Empty(t, cfg.Target, "target should be empty")
				require.Len(t, cfg.Rules, 1, "should have 1 rule")
				assert.Equal(t, "img", cfg.Rules[0].Name, "rule name should match")
			},
		},
		{
			name:     "hcl_config",
			fileName: ".sortrc.hcl",
			content: `
target = "/srv/organized"

rule "img" {
  match {
    ext = [".jpg"]
  }
  action {
    move_to = "Images"
  }
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/srv/organized", cfg.Target, "target should match")
				require.Len(t, cfg.Rules, 1, "should have 1 rule")
				assert.Equal(t, "img", cfg.Rules[0].Name, "rule label should become the name")
			},
		},
		{
			name:     "sortrc_extension_tries_yaml",
			fileName: ".sortrc",
			content: `
rules:
  - name: img
    match:
      ext: [".jpg"]
    action:
      move_to: Images
`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Rules, 1, "should have 1 rule")
			},
		},
		{
			name:        "unknown_yaml_field",
			fileName:    "bad.yaml",
			content:     "rules: []\nbogus: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "invalid_rules",
			fileName:    "empty.yaml",
			content:     "rules: []\n",
			wantErr:     true,
			errContains: "validating config",
		},
		{
			name:        "unsupported_extension",
			fileName:    "rules.toml",
			content:     "",
			wantErr:     true,
			errContains: "unsupported file extension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.fileName)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644), "writing config fixture")

			cfg, err := Load(testContext(t), path)
			if tt.wantErr {
				require.Error(t, err, "Load() should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error message should match")
				return
			}
			require.NoError(t, err, "Load() should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testContext(t), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err, "Load() should fail for a missing file")
	assert.Contains(t, err.Error(), "reading config file", "error should mention the read")
}
