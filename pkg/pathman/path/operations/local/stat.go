package pathlocal

import "os"

func (l *FileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (l *FileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func (l *FileSystem) IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
