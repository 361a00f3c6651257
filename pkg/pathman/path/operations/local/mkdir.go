package pathlocal

import (
	"io/fs"
	"os"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

// MakeDir creates a single directory with the given permissions.
// The permission bits are applied explicitly so the process umask does not narrow them.
func (l *FileSystem) MakeDir(path string, perm pathmodels.FileMode) error {
	mode := os.FileMode(perm).Perm()

	if err := os.Mkdir(path, mode); err != nil {
		return &fs.PathError{Op: "local-mkdir", Path: path, Err: err}
	}

	if err := os.Chmod(path, mode); err != nil {
		return &fs.PathError{Op: "local-mkdir-chmod", Path: path, Err: err}
	}

	return nil
}
