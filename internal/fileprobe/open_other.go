//go:build !unix

package fileprobe

import "os"

func openReadOnly(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	return f.Close()
}
