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

package plan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/sortrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ Build walks sourceRoot and matches every regular file against the
// config's rules in declared order, first match wins. Files already under
// the organization root are never planned, so repeated runs do not
// reprocess their own output. Symlinks and directories are not planned.
// skipDirs holds additional absolute directories to exclude, such as a
// log directory that lives outside the organization root.
func Build(ctx context.Context, sourceRoot string, cfg *config.Config, skipDirs ...string) (*Plan, error) {
	logger := zerolog.Ctx(ctx)

	absRoot, err := filepath.Abs(sourceRoot)
	if err != nil {
		return nil, errors.Errorf("resolving source root: %w", err)
	}

	orgRoot := ResolveTarget(absRoot, cfg.Target)
	p := &Plan{
		SourceRoot:       absRoot,
		OrganizationRoot: orgRoot,
	}

	// Destination paths seen so far, for flagging rule conflicts where
	// two different sources resolve to the same destination.
	seenDest := make(map[string]string)

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}

		if d.IsDir() {
			// Never descend into the organization root or an
			// excluded directory.
			if path == orgRoot {
				return fs.SkipDir
			}
			for _, skip := range skipDirs {
				if path == skip {
					return fs.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if underRoot(path, orgRoot) {
			return nil
		}

		rel, relErr := filepath.Rel(absRoot, path)
		if relErr == nil && ignored(cfg.Ignore, rel) {
			logger.Debug().Str("path", rel).Msg("ignored by pattern")
			return nil
		}

		rule := cfg.MatchRule(d.Name())
		if rule == nil {
			return nil
		}

		dest := filepath.Join(orgRoot, rule.Action.MoveTo, d.Name())
		if prev, ok := seenDest[dest]; ok {
			logger.Warn().
				Str("destination", dest).
				Str("first_source", prev).
				Str("second_source", path).
				Msg("two planned moves share a destination, the second will be renamed on apply")
		}
		seenDest[dest] = path

		p.Moves = append(p.Moves, PlannedMove{
			SourcePath:      path,
			DestinationPath: dest,
			RuleName:        rule.Name,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("planning moves: %w", err)
	}

	logger.Debug().
		Str("source", absRoot).
		Str("organization_root", orgRoot).
		Int("moves", len(p.Moves)).
		Msg("plan built")

	return p, nil
}

// underRoot reports whether path is root or inside it.
func underRoot(path, root string) bool {
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}

// ignored reports whether the relative path matches any ignore pattern.
func ignored(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
