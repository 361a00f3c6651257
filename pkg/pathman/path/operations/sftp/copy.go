package pathsftp

import (
	"io/fs"
	"os"

	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
)

// CopyFile copies a remote file to another remote location on the same host.
func (s *FileSystem) CopyFile(src, dst string) error {
	in, err := s.client.Open(src)
	if err != nil {
		return &fs.PathError{Op: "sftp-copy-open", Path: src, Err: err}
	}
	defer s.closeFile(in)

	info, err := in.Stat()
	if err != nil {
		return &fs.PathError{Op: "sftp-copy-stat", Path: src, Err: err}
	}

	out, err := s.client.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
	if err != nil {
		return &fs.PathError{Op: "sftp-copy-create", Path: dst, Err: err}
	}

	if _, err := pathhelpers.CopyBuffered(out, in, info.Size()); err != nil {
		s.closeFile(out)
		return &fs.PathError{Op: "sftp-copy", Path: dst, Err: err}
	}

	if err := out.Close(); err != nil {
		return &fs.PathError{Op: "sftp-copy-close", Path: dst, Err: err}
	}
	return nil
}
