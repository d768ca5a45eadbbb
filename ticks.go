package filetime

import (
	"math"

	"github.com/pkg/errors"
)

// The Windows native encoding counts 100-nanosecond ticks
// since 1601-01-01T00:00:00Z. windowsEpochOffset is the
// distance between that epoch and the Unix epoch.
const (
	windowsEpochOffset = 11644473600
	ticksPerSecond     = nanosPerSecond / 100
)

// windowsTicks converts a FileTime into the Windows tick
// encoding. Any sub-100ns remainder is discarded, never
// rounded up, so the conversion floors like every other
// precision reduction in this package.
//
// The encoding cannot represent instants before 1601 nor
// beyond the unsigned 64-bit tick window, and conversion
// of such values fails with ErrOverflow.
func windowsTicks(t FileTime) (uint64, error) {
	if t.seconds > math.MaxInt64-windowsEpochOffset {
		return 0, errors.Wrapf(ErrOverflow, "instant %s beyond tick range", t)
	}
	seconds := t.seconds + windowsEpochOffset
	if seconds < 0 {
		return 0, errors.Wrapf(ErrOverflow, "instant %s before 1601", t)
	}
	ticks := uint64(seconds)
	remainder := uint64(t.nanos / 100)
	if ticks > (math.MaxUint64-remainder)/ticksPerSecond {
		return 0, errors.Wrapf(ErrOverflow, "instant %s beyond tick range", t)
	}
	return ticks*ticksPerSecond + remainder, nil
}

// fromWindowsTicks converts a Windows tick count back to
// a FileTime. The inverse of windowsTicks for every tick
// count, with no loss.
func fromWindowsTicks(ticks uint64) FileTime {
	return FileTime{
		seconds: int64(ticks/ticksPerSecond) - windowsEpochOffset,
		nanos:   uint32(ticks%ticksPerSecond) * 100,
	}
}
