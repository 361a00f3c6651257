package pathlocal

import (
	"bufio"
	"io/fs"
	"os"

	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

func (l *FileSystem) WriteFile(filePath string, data []byte, perm pathmodels.FileMode) error {
	file, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(perm).Perm())
	if err != nil {
		return &fs.PathError{Op: "local-write-create", Path: filePath, Err: err}
	}

	writer := bufio.NewWriterSize(file, pathhelpers.GetOptimalBufferSize(int64(len(data))))

	if _, err := writer.Write(data); err != nil {
		l.closeFile(file)
		return &fs.PathError{Op: "local-write-write", Path: filePath, Err: err}
	}

	if err := writer.Flush(); err != nil {
		l.closeFile(file)
		return &fs.PathError{Op: "local-write-flush", Path: filePath, Err: err}
	}

	if err := file.Close(); err != nil {
		return &fs.PathError{Op: "local-write-close", Path: filePath, Err: err}
	}
	return nil
}
