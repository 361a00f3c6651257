package pathsftp

import (
	"io/fs"
	"os"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

// MakeDir creates a single remote directory and applies perm to it. Servers
// that refuse setstat keep their own default mode; the directory stays.
func (s *FileSystem) MakeDir(path string, perm pathmodels.FileMode) error {
	if err := s.client.Mkdir(path); err != nil {
		return &fs.PathError{Op: "sftp-mkdir", Path: path, Err: err}
	}

	if err := s.client.Chmod(path, os.FileMode(perm).Perm()); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("server refused directory mode")
	}

	return nil
}
