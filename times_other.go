//go:build !linux && !darwin && !freebsd && !windows
// +build !linux,!darwin,!freebsd,!windows

package filetime

import (
	"os"

	"github.com/pkg/errors"
)

func setPathTimes(path string, atime, mtime Update, follow bool) error {
	if !follow {
		return errors.Wrapf(
			ErrPlatformUnsupported,
			"cannot change symlink times of %s", path,
		)
	}
	atime, mtime, err := fillOmitted(path, atime, mtime, true)
	if err != nil {
		return err
	}
	if err := os.Chtimes(path, atime.when.Time(), mtime.when.Time()); err != nil {
		return wrapOS("chtimes", path, err)
	}
	return nil
}

func setHandleTimes(f *os.File, atime, mtime Update) error {
	return errors.Wrap(ErrPlatformUnsupported, "cannot change times of an open handle")
}
