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
	// Conversions keep 32-bit architectures working, the
	// timespec fields are narrower there.
	return New(int64(st.Atim.Sec), int64(st.Atim.Nsec)), nil
}

func creationTimeOf(fi os.FileInfo) (FileTime, error) {
	// Plain stat on Linux records no birth time, only the
	// inode change time, which is not the same thing.
	return FileTime{}, errors.Wrapf(
		ErrPlatformUnsupported, "no creation time for %s", fi.Name())
}
