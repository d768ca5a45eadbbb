package filetime

import (
	"os"

	"github.com/pkg/errors"
)

// The taxonomy of failures produced by this package. Any
// other failure of the underlying OS call is passed
// through untouched, wrapped only with the operation and
// path it happened on.
var (
	// ErrNotFound reports that the path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied reports that the caller may not
	// read or modify the metadata of the path.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrPlatformUnsupported reports that the current
	// OS or filesystem does not record the requested
	// field, or cannot honor the requested semantics
	// (such as not following a symlink).
	ErrPlatformUnsupported = errors.New("unsupported on this platform")

	// ErrOverflow reports that a FileTime falls outside
	// the representable window of the target native
	// encoding, such as an instant before 1601 on the
	// Windows tick encoding.
	ErrOverflow = errors.New("timestamp out of native range")
)

// Error carries a classified failure of a single
// metadata operation.
//
// Kind is one of the package sentinels above, or nil when
// the failure does not classify, and errors.Is matches
// against it. Err is the raw OS error and stays reachable
// through errors.Unwrap for callers inspecting errno.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// wrapOS classifies the outcome of an OS call on a path,
// preserving the raw error underneath.
func wrapOS(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var kind error
	switch {
	case os.IsNotExist(err):
		kind = ErrNotFound
	case os.IsPermission(err):
		kind = ErrPermissionDenied
	}
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}
