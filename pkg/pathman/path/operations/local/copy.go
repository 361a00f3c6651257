package pathlocal

import (
	"bufio"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"

	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
)

// CopyFile copies src over dst. The destination is written to a temporary file next to
// it and renamed into place, so an existing dst is either fully replaced or untouched.
func (l *FileSystem) CopyFile(src, dst string) error {
	file, err := os.Open(src)
	if err != nil {
		return &fs.PathError{Op: "local-copy-open", Path: src, Err: err}
	}
	defer l.closeFile(file)

	srcInfo, err := file.Stat()
	if err != nil {
		return &fs.PathError{Op: "local-copy-stat", Path: src, Err: err}
	}

	_, statErr := os.Stat(dst)
	created := os.IsNotExist(statErr)

	reader := bufio.NewReaderSize(file, pathhelpers.GetOptimalBufferSize(srcInfo.Size()))
	if err := atomic.WriteFile(dst, reader); err != nil {
		return &fs.PathError{Op: "local-copy-write", Path: dst, Err: err}
	}

	// Temp files are created 0600; a fresh copy takes the source permissions.
	if created {
		if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
			return &fs.PathError{Op: "local-copy-chmod", Path: dst, Err: err}
		}
	}

	return nil
}
