//go:build !linux && !darwin && !freebsd && !windows
// +build !linux,!darwin,!freebsd,!windows

package filetime

import (
	"os"

	"github.com/pkg/errors"
)

func accessTimeOf(fi os.FileInfo) (FileTime, error) {
	return FileTime{}, errors.Wrapf(
		ErrPlatformUnsupported, "no access time for %s", fi.Name())
}

func creationTimeOf(fi os.FileInfo) (FileTime, error) {
	return FileTime{}, errors.Wrapf(
		ErrPlatformUnsupported, "no creation time for %s", fi.Name())
}
