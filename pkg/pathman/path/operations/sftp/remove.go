package pathsftp

import "io/fs"

func (s *FileSystem) Remove(path string) error {
	info, err := s.client.Lstat(path)
	if err != nil {
		return &fs.PathError{Op: "sftp-remove-stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return &fs.PathError{Op: "sftp-remove-isdir", Path: path, Err: fs.ErrInvalid}
	}

	if err := s.client.Remove(path); err != nil {
		return &fs.PathError{Op: "sftp-remove", Path: path, Err: err}
	}
	return nil
}

// RemoveDir removes an empty remote directory.
func (s *FileSystem) RemoveDir(path string) error {
	info, err := s.client.Lstat(path)
	if err != nil {
		return &fs.PathError{Op: "sftp-removedir-stat", Path: path, Err: err}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "sftp-removedir-notdir", Path: path, Err: fs.ErrInvalid}
	}

	if err := s.client.RemoveDirectory(path); err != nil {
		return &fs.PathError{Op: "sftp-removedir", Path: path, Err: err}
	}
	return nil
}
