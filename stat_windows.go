package filetime

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// filetimeTicks reassembles the two halves of a native
// FILETIME into the tick count it encodes.
func filetimeTicks(ft syscall.Filetime) uint64 {
	return uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
}

func accessTimeOf(fi os.FileInfo) (FileTime, error) {
	attrs, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return FileTime{}, errors.Wrapf(
			ErrPlatformUnsupported, "no file attribute data for %s", fi.Name())
	}
	return fromWindowsTicks(filetimeTicks(attrs.LastAccessTime)), nil
}

func creationTimeOf(fi os.FileInfo) (FileTime, error) {
	attrs, ok := fi.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return FileTime{}, errors.Wrapf(
			ErrPlatformUnsupported, "no file attribute data for %s", fi.Name())
	}
	return fromWindowsTicks(filetimeTicks(attrs.CreationTime)), nil
}
