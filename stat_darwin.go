package filetime

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

func accessTimeOf(fi os.FileInfo) (FileTime, error) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return FileTime{}, errors.Wrapf(
			ErrPlatformUnsupported, "no stat data for %s", fi.Name())
	}
	return New(st.Atimespec.Sec, st.Atimespec.Nsec), nil
}

func creationTimeOf(fi os.FileInfo) (FileTime, error) {
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return FileTime{}, errors.Wrapf(
			ErrPlatformUnsupported, "no stat data for %s", fi.Name())
	}
	return New(st.Birthtimespec.Sec, st.Birthtimespec.Nsec), nil
}
