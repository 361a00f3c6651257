//go:build !unix

package pathlocal

import (
	"io/fs"
	"os"
)

func (l *FileSystem) Rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return &fs.PathError{Op: "local-rename", Path: oldPath, Err: err}
	}
	return nil
}
