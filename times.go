package filetime

import (
	"os"
)

// FromModTime extracts the last modification time from an
// already obtained metadata object.
func FromModTime(fi os.FileInfo) FileTime {
	return emulated(FromTime(fi.ModTime()))
}

// FromAccessTime extracts the last access time from an
// already obtained metadata object. It fails with
// ErrPlatformUnsupported on platforms whose metadata does
// not record an access time.
func FromAccessTime(fi os.FileInfo) (FileTime, error) {
	t, err := accessTimeOf(fi)
	if err != nil {
		return FileTime{}, err
	}
	return emulated(t), nil
}

// FromCreationTime extracts the creation time from an
// already obtained metadata object. Creation time is best
// effort: most filesystems on Linux and all fallback
// platforms do not record one, and the call fails with
// ErrPlatformUnsupported there.
func FromCreationTime(fi os.FileInfo) (FileTime, error) {
	t, err := creationTimeOf(fi)
	if err != nil {
		return FileTime{}, err
	}
	return emulated(t), nil
}

// ModTime returns the last modification time of the path.
func ModTime(path string) (FileTime, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileTime{}, wrapOS("stat", path, err)
	}
	return FromModTime(fi), nil
}

// AccessTime returns the last access time of the path.
func AccessTime(path string) (FileTime, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileTime{}, wrapOS("stat", path, err)
	}
	return FromAccessTime(fi)
}

// CreationTime returns the creation time of the path,
// where the platform records one.
func CreationTime(path string) (FileTime, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return FileTime{}, wrapOS("stat", path, err)
	}
	return FromCreationTime(fi)
}

// SetFileTimes applies the requested updates to the
// access and modification times of the path, resolving
// symlinks on the way.
//
// The update of both fields is handed to the platform in
// a single call, so whatever atomicity the platform
// grants to a combined update is preserved.
func SetFileTimes(path string, atime, mtime Update) error {
	return setTimes(path, atime.resolve(), mtime.resolve(), true)
}

// SetSymlinkFileTimes applies the requested updates to
// the path itself without resolving a final symlink, so a
// symlink's own timestamps can be changed even when its
// target is missing. Fails with ErrPlatformUnsupported on
// platforms that cannot change a symlink's timestamps.
func SetSymlinkFileTimes(path string, atime, mtime Update) error {
	return setTimes(path, atime.resolve(), mtime.resolve(), false)
}

// SetFileMtime sets the modification time of the path,
// leaving the access time untouched.
func SetFileMtime(path string, t FileTime) error {
	return SetFileTimes(path, Omit(), Set(t))
}

// SetFileAtime sets the access time of the path, leaving
// the modification time untouched.
func SetFileAtime(path string, t FileTime) error {
	return SetFileTimes(path, Set(t), Omit())
}

// SetFileHandleTimes applies the requested updates to the
// file behind an already open handle.
func SetFileHandleTimes(f *os.File, atime, mtime Update) error {
	atime, mtime = atime.resolve(), mtime.resolve()
	if atime.omitted() && mtime.omitted() {
		return nil
	}
	return setHandleTimes(f, atime, mtime)
}

func setTimes(path string, atime, mtime Update, follow bool) error {
	// Nothing to change, don't even touch the file.
	if atime.omitted() && mtime.omitted() {
		return nil
	}
	return setPathTimes(path, atime, mtime, follow)
}

// fillOmitted replaces omitted updates with the current
// value of their field, for platforms without a native
// leave-unchanged sentinel. The re-read honors the follow
// semantics of the enclosing call so a symlink update
// refills from the symlink's own metadata.
func fillOmitted(path string, atime, mtime Update, follow bool) (Update, Update, error) {
	if !atime.omitted() && !mtime.omitted() {
		return atime, mtime, nil
	}
	stat := os.Stat
	if !follow {
		stat = os.Lstat
	}
	fi, err := stat(path)
	if err != nil {
		return atime, mtime, wrapOS("stat", path, err)
	}
	return fillOmittedInfo(fi, atime, mtime)
}

func fillOmittedInfo(fi os.FileInfo, atime, mtime Update) (Update, Update, error) {
	if atime.omitted() {
		current, err := FromAccessTime(fi)
		if err != nil {
			return atime, mtime, err
		}
		atime = Update{kind: updateSet, when: current}
	}
	if mtime.omitted() {
		mtime = Update{kind: updateSet, when: FromModTime(fi)}
	}
	return atime, mtime, nil
}
