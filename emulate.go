package filetime

import (
	"os"
	"sync"
)

// envEmulateSecondOnly toggles the second-only emulation
// mode in builds carrying the filetimedebug tag. When set
// to a non-empty value, every timestamp read or written by
// this package is floored to a whole second, reproducing
// the behavior of coarse-precision filesystems
// deterministically in tests.
const envEmulateSecondOnly = "FILETIME_EMULATE_SECOND_ONLY"

var emulation struct {
	once    sync.Once
	enabled bool
}

// secondOnly reports whether second-only emulation is
// active. The environment is consulted exactly once for
// the life of the process; concurrent first callers race
// only on the sync.Once, and all of them observe the
// single computed value.
func secondOnly() bool {
	emulation.once.Do(func() {
		emulation.enabled = debugBuild &&
			os.Getenv(envEmulateSecondOnly) != ""
	})
	return emulation.enabled
}

// emulated filters a timestamp through the emulation
// mode, flooring it to a whole second when active.
func emulated(t FileTime) FileTime {
	if secondOnly() {
		return t.Truncate()
	}
	return t
}
