package filetime

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// nativeFiletime maps a resolved update to the native
// FILETIME representation, with nil standing for the
// leave-unchanged sentinel of SetFileTime.
func nativeFiletime(u Update) (*windows.Filetime, error) {
	if u.omitted() {
		return nil, nil
	}
	ticks, err := windowsTicks(u.when)
	if err != nil {
		return nil, err
	}
	return &windows.Filetime{
		LowDateTime:  uint32(ticks),
		HighDateTime: uint32(ticks >> 32),
	}, nil
}

func setPathTimes(path string, atime, mtime Update, follow bool) error {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return errors.Wrapf(err, "encode path %q", path)
	}
	op := "chtimes"
	// FILE_FLAG_BACKUP_SEMANTICS is required to open a
	// directory handle at all.
	attrs := uint32(windows.FILE_FLAG_BACKUP_SEMANTICS)
	if !follow {
		attrs |= windows.FILE_FLAG_OPEN_REPARSE_POINT
		op = "lchtimes"
	}
	handle, err := windows.CreateFile(
		pathp, windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil, windows.OPEN_EXISTING, attrs, 0,
	)
	if err != nil {
		return wrapOS(op, path, err)
	}
	defer func() { _ = windows.CloseHandle(handle) }()
	return setFiletimes(handle, op, path, atime, mtime)
}

func setFiletimes(handle windows.Handle, op, path string, atime, mtime Update) error {
	at, err := nativeFiletime(atime)
	if err != nil {
		return err
	}
	mt, err := nativeFiletime(mtime)
	if err != nil {
		return err
	}
	if err := windows.SetFileTime(handle, nil, at, mt); err != nil {
		return wrapOS(op, path, err)
	}
	return nil
}

func setHandleTimes(f *os.File, atime, mtime Update) error {
	return setFiletimes(windows.Handle(f.Fd()), "chtimes", f.Name(), atime, mtime)
}
