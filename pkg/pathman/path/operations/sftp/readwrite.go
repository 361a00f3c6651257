package pathsftp

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

func (s *FileSystem) ReadFile(filePath string) ([]byte, error) {
	file, err := s.client.Open(filePath)
	if err != nil {
		return nil, &fs.PathError{Op: "sftp-read-open", Path: filePath, Err: err}
	}
	defer s.closeFile(file)

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, &fs.PathError{Op: "sftp-read-read-all", Path: filePath, Err: err}
	}
	return content, nil
}

func (s *FileSystem) WriteFile(filePath string, data []byte, perm pathmodels.FileMode) error {
	file, err := s.client.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return &fs.PathError{Op: "sftp-write-create", Path: filePath, Err: err}
	}

	if _, err := pathhelpers.CopyBuffered(file, bytes.NewReader(data), int64(len(data))); err != nil {
		s.closeFile(file)
		return &fs.PathError{Op: "sftp-write-copy", Path: filePath, Err: err}
	}

	if err := file.Chmod(os.FileMode(perm).Perm()); err != nil {
		s.log.Warn().Err(err).Str("path", filePath).Msg("server refused file mode")
	}

	// the server may only report a failed flush on close
	if err := file.Close(); err != nil {
		return &fs.PathError{Op: "sftp-write-close", Path: filePath, Err: err}
	}
	return nil
}
