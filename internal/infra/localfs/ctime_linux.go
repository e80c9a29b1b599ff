//go:build linux

package localfs

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// creationTime returns the birth time when the filesystem records one and
// falls back to the modification time otherwise.
func creationTime(path string, info fs.FileInfo) int64 {
	var stx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_SYMLINK_NOFOLLOW, unix.STATX_BTIME, &stx)
	if err == nil && stx.Mask&unix.STATX_BTIME != 0 {
		return stx.Btime.Sec
	}

	return info.ModTime().Unix()
}
