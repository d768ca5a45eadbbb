package filetime

import (
	"fmt"
	"time"
)

const nanosPerSecond = 1_000_000_000

// FileTime is a timestamp recorded for a file, counted as
// seconds plus nanoseconds since 1970-01-01T00:00:00Z.
//
// The seconds may be negative for instants before the
// epoch, while the nanoseconds are always normalized into
// [0, 999999999]. This is the floor convention of POSIX
// time since epoch, so ordering FileTime values by
// (seconds, nanoseconds) orders them chronologically even
// across the epoch.
type FileTime struct {
	seconds int64
	nanos   uint32
}

// New creates a FileTime from seconds and nanoseconds
// since the Unix epoch.
//
// The nanoseconds may be any value and are normalized by
// carrying whole seconds into the seconds part, flooring
// toward negative infinity so that the stored nanoseconds
// stay non-negative.
func New(seconds, nanoseconds int64) FileTime {
	seconds += nanoseconds / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	}
	return FileTime{seconds: seconds, nanos: uint32(nanoseconds)}
}

// FromTime creates a FileTime holding the same instant as
// the specified time value.
func FromTime(t time.Time) FileTime {
	return New(t.Unix(), int64(t.Nanosecond()))
}

// Seconds returns the whole seconds since the Unix epoch,
// negative for instants before it.
func (t FileTime) Seconds() int64 { return t.seconds }

// Nanoseconds returns the fraction of a second beyond
// Seconds, always in [0, 999999999].
func (t FileTime) Nanoseconds() uint32 { return t.nanos }

// Time converts the value into the standard library's
// time representation.
func (t FileTime) Time() time.Time {
	return time.Unix(t.seconds, int64(t.nanos))
}

// UnixNanoseconds returns the instant as a nanosecond
// count since the Unix epoch. Like time.Time.UnixNano,
// the result is undefined for instants that do not fit
// in a signed 64-bit nanosecond count.
func (t FileTime) UnixNanoseconds() int64 {
	return t.seconds*nanosPerSecond + int64(t.nanos)
}

// Truncate returns the value floored to a whole second.
func (t FileTime) Truncate() FileTime {
	return FileTime{seconds: t.seconds}
}

// IsZero reports whether the value is the Unix epoch, the
// zero value of FileTime.
func (t FileTime) IsZero() bool {
	return t.seconds == 0 && t.nanos == 0
}

// Compare returns -1, 0 or +1 when t is before, equal to
// or after the other value.
func (t FileTime) Compare(other FileTime) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	case t.nanos < other.nanos:
		return -1
	case t.nanos > other.nanos:
		return 1
	}
	return 0
}

// Before reports whether t is earlier than the other value.
func (t FileTime) Before(other FileTime) bool {
	return t.Compare(other) < 0
}

// After reports whether t is later than the other value.
func (t FileTime) After(other FileTime) bool {
	return t.Compare(other) > 0
}

// Equal reports whether both values hold the same instant.
func (t FileTime) Equal(other FileTime) bool {
	return t == other
}

func (t FileTime) String() string {
	return fmt.Sprintf("%d.%09ds", t.seconds, t.nanos)
}
