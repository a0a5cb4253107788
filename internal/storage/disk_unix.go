//go:build linux || darwin

package storage

import (
	"errors"
	"io/fs"

	"golang.org/x/sys/unix"
)

func diskCapacity(path string) (int64, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	return int64(st.Blocks) * int64(st.Bsize), nil
}
