//go:build unix

package fileprobe

import (
	"golang.org/x/sys/unix"
)

func openReadOnly(path string) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return err
	}

	return unix.Close(fd)
}
