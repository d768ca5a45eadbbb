//go:build linux || darwin || freebsd
// +build linux darwin freebsd

package filetime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymlinkTimesDanglingTarget(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	// The link itself is updated even though its target
	// does not exist.
	atime := New(1111111111, 111000000)
	mtime := New(2222222222, 222000000)
	assert.NoError(SetSymlinkFileTimes(link, Set(atime), Set(mtime)))

	fi, err := os.Lstat(link)
	assert.NoError(err)
	assert.Equal(emulated(mtime), FromModTime(fi))
	readAtime, err := FromAccessTime(fi)
	assert.NoError(err)
	assert.Equal(emulated(atime), readAtime)

	// And the target is still missing, proving that the
	// call never resolved the link.
	_, err = os.Stat(link)
	assert.True(os.IsNotExist(err))
}

func TestSymlinkTimesLeaveTargetAlone(t *testing.T) {
	assert := assert.New(t)
	target := createFile(t, "target")
	link := target + ".link"
	require.NoError(t, os.Symlink(target, link))

	before, err := ModTime(target)
	assert.NoError(err)
	assert.NoError(SetSymlinkFileTimes(
		link, Set(New(1000, 0)), Set(New(2000, 0))))

	after, err := ModTime(target)
	assert.NoError(err)
	assert.Equal(before, after)

	fi, err := os.Lstat(link)
	assert.NoError(err)
	assert.Equal(New(2000, 0), FromModTime(fi))
}

func TestFileTimesThroughSymlink(t *testing.T) {
	assert := assert.New(t)
	target := createFile(t, "target")
	link := target + ".link"
	require.NoError(t, os.Symlink(target, link))

	stamp := New(1470000000, 424242000)
	assert.NoError(SetFileMtime(link, stamp))

	// The follow variant lands on the target.
	read, err := ModTime(target)
	assert.NoError(err)
	assert.Equal(emulated(stamp), read)
}

func TestSymlinkMtimeKeepsAtime(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing"), link))

	fi, err := os.Lstat(link)
	assert.NoError(err)
	before, err := FromAccessTime(fi)
	assert.NoError(err)

	assert.NoError(SetSymlinkFileTimes(
		link, Omit(), Set(New(1234567890, 0))))

	fi, err = os.Lstat(link)
	assert.NoError(err)
	after, err := FromAccessTime(fi)
	assert.NoError(err)
	assert.Equal(before, after)
}

func TestPreEpochRoundTrip(t *testing.T) {
	assert := assert.New(t)
	path := createFile(t, "preepoch")

	// One day before the epoch.
	stamp := New(-86400, 0)
	assert.NoError(SetFileMtime(path, stamp))
	read, err := ModTime(path)
	assert.NoError(err)
	assert.Equal(stamp, read)
	assert.True(read.Before(New(0, 0)))
}
