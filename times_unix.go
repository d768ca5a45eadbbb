//go:build linux || darwin || freebsd
// +build linux darwin freebsd

package filetime

import (
	"golang.org/x/sys/unix"
)

// unixTimespec builds the native timespec of an instant.
// FileTime keeps the nanoseconds non-negative, which is
// exactly the normalization the timespec syscalls expect,
// so the fields map structurally and the full signed
// 64-bit seconds range passes through with no loss.
func unixTimespec(t FileTime) unix.Timespec {
	return unix.Timespec{Sec: t.seconds, Nsec: int64(t.nanos)}
}
