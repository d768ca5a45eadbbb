package filetime

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// timespecOf maps a resolved update to its native value,
// using the kernel's leave-unchanged sentinel for omitted
// fields so a one-field update stays a single syscall.
func timespecOf(u Update) unix.Timespec {
	if u.omitted() {
		return unix.Timespec{Nsec: unix.UTIME_OMIT}
	}
	return unixTimespec(u.when)
}

func setPathTimes(path string, atime, mtime Update, follow bool) error {
	flags := 0
	op := "chtimes"
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
		op = "lchtimes"
	}
	times := []unix.Timespec{timespecOf(atime), timespecOf(mtime)}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, flags); err != nil {
		return wrapOS(op, path, err)
	}
	return nil
}

// setHandleTimes updates the times through the open file
// descriptor, keeping the leave-unchanged sentinel and
// the nanosecond precision of the path based calls. A
// null path makes utimensat operate on the descriptor
// itself, the same technique glibc uses for futimens.
func setHandleTimes(f *os.File, atime, mtime Update) error {
	times := [2]unix.Timespec{timespecOf(atime), timespecOf(mtime)}
	_, _, errno := unix.Syscall6(
		unix.SYS_UTIMENSAT, f.Fd(), 0,
		uintptr(unsafe.Pointer(&times[0])), 0, 0, 0,
	)
	if errno != 0 {
		return wrapOS("futimens", f.Name(), errno)
	}
	return nil
}
