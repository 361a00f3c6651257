package pathlocal

import (
	"io/fs"
	"os"
	"runtime"
)

// RemoveDir deletes an empty directory.
func (l *FileSystem) RemoveDir(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &fs.PathError{Op: "local-removedir-stat", Path: path, Err: err}
	}

	if !info.IsDir() {
		return &fs.PathError{Op: "local-removedir-notdir", Path: path, Err: fs.ErrInvalid}
	}

	// Read-only directories cannot be removed on Windows
	if runtime.GOOS == "windows" {
		if err := os.Chmod(path, 0777); err != nil {
			return &fs.PathError{Op: "local-removedir-chmod", Path: path, Err: err}
		}
	}

	if err := os.Remove(path); err != nil {
		return &fs.PathError{Op: "local-removedir", Path: path, Err: err}
	}

	return nil
}
