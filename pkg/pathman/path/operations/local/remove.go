package pathlocal

import (
	"io/fs"
	"os"
)

// Remove deletes a single file.
func (l *FileSystem) Remove(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &fs.PathError{Op: "local-remove-stat", Path: path, Err: err}
	}

	if info.IsDir() {
		return &fs.PathError{Op: "local-remove-isdir", Path: path, Err: fs.ErrInvalid}
	}

	if err := os.Remove(path); err != nil {
		return &fs.PathError{Op: "local-remove", Path: path, Err: err}
	}

	return nil
}
