package fsop

import (
	"io/fs"

	"gitlab.com/tozd/go/errors"
)

// 📊 ErrorKind classifies a per-item filesystem failure
type ErrorKind int

const (
	ErrorKindUnknown ErrorKind = iota
	ErrorKindNotFound
	ErrorKindPermissionDenied
	ErrorKindCrossDeviceOrIO
)

// String returns a string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNotFound:
		return "not-found"
	case ErrorKindPermissionDenied:
		return "permission-denied"
	case ErrorKindCrossDeviceOrIO:
		return "io-error"
	default:
		return "unknown"
	}
}

// 🔍 Classify maps a filesystem error to an ErrorKind
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return ErrorKindUnknown
	case errors.Is(err, fs.ErrNotExist):
		return ErrorKindNotFound
	case errors.Is(err, fs.ErrPermission):
		return ErrorKindPermissionDenied
	default:
		return ErrorKindCrossDeviceOrIO
	}
}
