package pathsftp

import "io/fs"

func (s *FileSystem) List(dirPath string) ([]string, error) {
	entries, err := s.client.ReadDir(dirPath)
	if err != nil {
		return nil, &fs.PathError{Op: "sftp-list-read", Path: dirPath, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
