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

// Package fsop holds the filesystem primitives shared by apply and undo:
// collision-safe destination naming, the move primitive, and error
// classification.
package fsop

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🎯 AvailablePath returns desired if nothing exists there, otherwise the
// first of "name (1).ext", "name (2).ext", ... that does not exist.
// Existence is only checked, never created. A stat failure other than
// "does not exist" is returned as an error; a path that cannot be
// inspected must never be treated as free.
func AvailablePath(desired string) (string, error) {
	return available(desired, "%s (%d)%s")
}

// 🎯 AvailableRestorePath is AvailablePath with the undo suffix token,
// "name (undone 1).ext", so restored duplicates never collide with
// forward-run artifacts and stay identifiable.
func AvailableRestorePath(desired string) (string, error) {
	return available(desired, "%s (undone %d)%s")
}

func available(desired, format string) (string, error) {
	taken, err := exists(desired)
	if err != nil {
		return "", err
	}
	if !taken {
		return desired, nil
	}

	dir := filepath.Dir(desired)
	base := filepath.Base(desired)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	for i := 1; ; i++ {
		candidate := filepath.Join(dir, fmt.Sprintf(format, stem, i, ext))
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}

// exists reports whether anything is at path. Only "does not exist"
// means free; any other stat failure is surfaced so the caller can
// record it instead of looping on candidates it cannot inspect.
func exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("statting %s: %w", path, err)
}
