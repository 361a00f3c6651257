//go:build unix

package pathlocal

import (
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

// Rename moves oldPath to newPath. An existing empty directory at newPath is
// replaced, which os.Rename refuses on unix; rename(2) itself allows it.
func (l *FileSystem) Rename(oldPath, newPath string) error {
	if l.IsDir(oldPath) && l.IsDir(newPath) {
		if err := unix.Rename(oldPath, newPath); err != nil {
			return &fs.PathError{Op: "local-rename", Path: oldPath, Err: err}
		}
		return nil
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return &fs.PathError{Op: "local-rename", Path: oldPath, Err: err}
	}
	return nil
}
