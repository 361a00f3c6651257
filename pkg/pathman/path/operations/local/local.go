// Package pathlocal implements the path backend on top of the host operating system.
package pathlocal

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ImGajeed76/pathman/internal/util"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

// FileSystem is the os backed implementation of pathmodels.FileSystem.
type FileSystem struct {
	log util.Logger
}

var _ pathmodels.FileSystem = (*FileSystem)(nil)

func New() *FileSystem {
	return &FileSystem{log: util.GetLogger("pathlocal")}
}

func (l *FileSystem) Separator() byte {
	return os.PathSeparator
}

func (l *FileSystem) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &fs.PathError{Op: "local-abs", Path: path, Err: err}
	}
	return abs, nil
}

func (l *FileSystem) closeFile(file *os.File) {
	if err := file.Close(); err != nil {
		l.log.Warn().Err(err).Str("path", file.Name()).Msg("error closing file")
	}
}
