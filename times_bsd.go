//go:build darwin || freebsd
// +build darwin freebsd

package filetime

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func setPathTimes(path string, atime, mtime Update, follow bool) error {
	// No leave-unchanged sentinel is available for
	// utimensat here, so an omitted field is refilled
	// from the current metadata before the write.
	atime, mtime, err := fillOmitted(path, atime, mtime, follow)
	if err != nil {
		return err
	}
	flags := 0
	op := "chtimes"
	if !follow {
		flags = unix.AT_SYMLINK_NOFOLLOW
		op = "lchtimes"
	}
	times := []unix.Timespec{unixTimespec(atime.when), unixTimespec(mtime.when)}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, path, times, flags); err != nil {
		return wrapOS(op, path, err)
	}
	return nil
}

// handleTimeval floors an instant to the microsecond
// granularity of futimes. The timeval field layout
// differs between these platforms, so the value goes
// through the nanosecond splitter of x/sys after an
// explicit range check, instead of mapping the fields
// structurally and instead of ever wrapping silently.
func handleTimeval(t FileTime) (unix.Timeval, error) {
	if t.seconds > math.MaxInt64/nanosPerSecond-1 ||
		t.seconds < math.MinInt64/nanosPerSecond+1 {
		return unix.Timeval{}, errors.Wrapf(
			ErrOverflow, "instant %s beyond timeval range", t)
	}
	return unix.NsecToTimeval(t.UnixNanoseconds() - int64(t.nanos%1000)), nil
}

// setHandleTimes updates the times through the open file
// descriptor. Only the timeval based futimes is available
// for descriptors here, so sub-microsecond digits are
// floored away and omitted fields are refilled by a stat
// of the descriptor.
func setHandleTimes(f *os.File, atime, mtime Update) error {
	if atime.omitted() || mtime.omitted() {
		fi, err := f.Stat()
		if err != nil {
			return wrapOS("stat", f.Name(), err)
		}
		atime, mtime, err = fillOmittedInfo(fi, atime, mtime)
		if err != nil {
			return err
		}
	}
	at, err := handleTimeval(atime.when)
	if err != nil {
		return err
	}
	mt, err := handleTimeval(mtime.when)
	if err != nil {
		return err
	}
	if err := unix.Futimes(int(f.Fd()), []unix.Timeval{at, mt}); err != nil {
		return wrapOS("futimes", f.Name(), err)
	}
	return nil
}
