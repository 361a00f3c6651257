// Package pathsftp implements the path backend on top of an SFTP session.
package pathsftp

import (
	"context"
	"io/fs"
	"os"

	"github.com/pkg/sftp"

	"github.com/ImGajeed76/pathman/internal/util"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
	sftpmanager "github.com/ImGajeed76/pathman/pkg/pathman/sftp"
)

// FileSystem runs every primitive against a remote host. Remote paths always use '/'.
type FileSystem struct {
	client *sftp.Client
	log    util.Logger
}

var _ pathmodels.FileSystem = (*FileSystem)(nil)

// New wraps an established client. The caller keeps ownership of the client.
func New(client *sftp.Client) *FileSystem {
	return &FileSystem{client: client, log: util.GetLogger("pathsftp")}
}

// Dial returns a backend over a pooled client from the global sftp manager.
func Dial(ctx context.Context, details sftpmanager.ConnectionDetails) (*FileSystem, error) {
	client, err := sftpmanager.GetClient(ctx, details)
	if err != nil {
		return nil, &pathmodels.PathError{Op: "sftp-get-client", Path: details.String(), Err: err}
	}
	return New(client), nil
}

func (s *FileSystem) Separator() byte {
	return '/'
}

func (s *FileSystem) Abs(path string) (string, error) {
	abs, err := s.client.RealPath(path)
	if err != nil {
		return "", &fs.PathError{Op: "sftp-abs", Path: path, Err: err}
	}
	return abs, nil
}

func (s *FileSystem) stat(path string) (os.FileInfo, bool) {
	info, err := s.client.Stat(path)
	if err != nil {
		return nil, false
	}
	return info, true
}

func (s *FileSystem) Exists(path string) bool {
	_, ok := s.stat(path)
	return ok
}

func (s *FileSystem) IsDir(path string) bool {
	info, ok := s.stat(path)
	return ok && info.IsDir()
}

func (s *FileSystem) IsFile(path string) bool {
	info, ok := s.stat(path)
	return ok && !info.IsDir()
}

func (s *FileSystem) closeFile(file *sftp.File) {
	if err := file.Close(); err != nil {
		s.log.Warn().Err(err).Str("path", file.Name()).Msg("error closing remote file")
	}
}
