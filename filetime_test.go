package filetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalization(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(FileTime{seconds: 1, nanos: 500}, New(1, 500))
	assert.Equal(FileTime{seconds: 3, nanos: 500_000_000},
		New(1, 2_500_000_000))
	assert.Equal(FileTime{seconds: -1, nanos: 999_999_999}, New(0, -1))
	assert.Equal(FileTime{seconds: -2, nanos: 999_999_999}, New(-1, -1))
	assert.Equal(FileTime{seconds: -86400}, New(-86400, 0))
	assert.Equal(FileTime{seconds: 0, nanos: 0}, New(-1, 1_000_000_000))
}

func TestTimeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	moments := []time.Time{
		time.Unix(0, 0),
		time.Unix(1234567890, 123456789),
		time.Unix(-86400, 0),
		time.Date(1960, time.March, 1, 2, 3, 4, 500, time.UTC),
	}
	for _, moment := range moments {
		ft := FromTime(moment)
		assert.True(ft.Time().Equal(moment), "moment %s", moment)
		assert.Equal(moment.UnixNano(), ft.UnixNanoseconds())
	}
}

func TestOrdering(t *testing.T) {
	assert := assert.New(t)

	ordered := []FileTime{
		New(-86400, 0),
		New(-1, 999_999_998),
		New(-1, 999_999_999),
		New(0, 0),
		New(0, 1),
		New(12345, 0),
	}
	for i, left := range ordered {
		assert.Equal(0, left.Compare(left))
		assert.True(left.Equal(left))
		for _, right := range ordered[i+1:] {
			assert.Equal(-1, left.Compare(right))
			assert.Equal(1, right.Compare(left))
			assert.True(left.Before(right))
			assert.True(right.After(left))
			assert.False(left.Equal(right))
		}
	}
}

func TestTruncate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(New(12345, 0), New(12345, 678_901_234).Truncate())
	assert.Equal(New(0, 0), New(0, 999_999_999).Truncate())

	// Flooring keeps the seconds untouched, even before
	// the epoch where nonzero nanoseconds already floored
	// the seconds down during normalization.
	assert.Equal(New(-2, 0), New(-1, -1).Truncate())
}

func TestZeroAndString(t *testing.T) {
	assert := assert.New(t)

	var zero FileTime
	assert.True(zero.IsZero())
	assert.False(New(0, 1).IsZero())
	assert.Equal("0.000000000s", zero.String())
	assert.Equal("1.000000500s", New(1, 500).String())
	assert.Equal("-86400.000000000s", New(-86400, 0).String())
}
