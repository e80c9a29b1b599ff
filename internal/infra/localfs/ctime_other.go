//go:build !linux

package localfs

import "io/fs"

func creationTime(_ string, info fs.FileInfo) int64 {
	return info.ModTime().Unix()
}
