package filetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func withFrozenClock(t *testing.T, moment time.Time) {
	previous := now
	now = func() time.Time { return moment }
	t.Cleanup(func() { now = previous })
}

func TestUpdateResolve(t *testing.T) {
	assert := assert.New(t)

	frozen := time.Unix(1500000000, 600_000_000)
	withFrozenClock(t, frozen)

	resolved := Set(New(42, 7)).resolve()
	assert.False(resolved.omitted())
	assert.Equal(emulated(New(42, 7)), resolved.when)

	resolved = Now().resolve()
	assert.False(resolved.omitted())
	assert.Equal(emulated(FromTime(frozen)), resolved.when)

	assert.True(Omit().resolve().omitted())

	// The zero value of Update leaves the field alone.
	var zero Update
	assert.True(zero.omitted())
	assert.True(zero.resolve().omitted())
}
