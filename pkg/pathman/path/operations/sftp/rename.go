package pathsftp

import "io/fs"

// Rename moves oldPath to newPath. Servers advertising posix-rename@openssh.com get
// POSIX semantics (an existing file target is replaced); others fall back to the
// plain SFTP rename, which fails when the target exists.
func (s *FileSystem) Rename(oldPath, newPath string) error {
	if _, ok := s.client.HasExtension("posix-rename@openssh.com"); ok {
		if err := s.client.PosixRename(oldPath, newPath); err != nil {
			return &fs.PathError{Op: "sftp-posix-rename", Path: oldPath, Err: err}
		}
		return nil
	}

	if err := s.client.Rename(oldPath, newPath); err != nil {
		return &fs.PathError{Op: "sftp-rename", Path: oldPath, Err: err}
	}
	return nil
}
