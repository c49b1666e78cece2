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

package fsop

import (
	"io"
	"os"
	"path/filepath"
	"syscall"

	"gitlab.com/tozd/go/errors"
)

// 🚚 MoveFile moves src to dst. Rename is tried first; cross-device moves
// fall back to copy+delete. On any failure the file is still present at
// src and no partial dst is left behind.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return errors.Errorf("renaming %s: %w", src, err)
	}

	if err := copyThenDelete(src, dst); err != nil {
		return errors.Errorf("moving %s across devices: %w", src, err)
	}
	return nil
}

// 🔍 SameFile reports whether two paths resolve to the identical
// filesystem entity. Missing paths are never the same file.
func SameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// isCrossDevice reports whether a rename failed with EXDEV.
func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// copyThenDelete copies src to dst via a temp file in dst's directory,
// renames it into place, then removes src. The source is only removed
// after the destination is fully in place.
func copyThenDelete(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return errors.Errorf("statting source file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Errorf("copying file content: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, info.Mode().Perm()); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("preserving file mode: %w", err)
	}
	if err := os.Rename(tmpPath, dst); err != nil {
		os.Remove(tmpPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	if err := os.Remove(src); err != nil {
		return errors.Errorf("removing source file: %w", err)
	}
	return nil
}
