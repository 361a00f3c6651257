package pathlocal

import (
	"io/fs"
	"os"
)

// List returns the names of the entries directly inside dirPath.
func (l *FileSystem) List(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, &fs.PathError{Op: "local-list-read", Path: dirPath, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
