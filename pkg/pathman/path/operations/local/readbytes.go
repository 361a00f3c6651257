package pathlocal

import (
	"bufio"
	"io"
	"io/fs"
	"os"

	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
)

func (l *FileSystem) ReadFile(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, &fs.PathError{Op: "local-read-open", Path: filePath, Err: err}
	}
	defer l.closeFile(file)

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, &fs.PathError{Op: "local-read-stat", Path: filePath, Err: err}
	}

	reader := bufio.NewReaderSize(file, pathhelpers.GetOptimalBufferSize(fileInfo.Size()))

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, &fs.PathError{Op: "local-read-read-all", Path: filePath, Err: err}
	}

	return content, nil
}
