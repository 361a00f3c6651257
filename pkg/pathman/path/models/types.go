package pathmodels

import (
	"errors"
	"io/fs"
)

type FileMode uint32

// DefaultMode is used for directories created by EnsureExists and tree copies.
const DefaultMode FileMode = 0755

// InfoKey selects one component of a path, mirroring the classic pathinfo keys.
type InfoKey string

const (
	InfoDirname   InfoKey = "dirname"   // everything before the last separator
	InfoBasename  InfoKey = "basename"  // last segment, extension included
	InfoExtension InfoKey = "extension" // text after the last dot of the basename
	InfoFilename  InfoKey = "filename"  // basename without the extension
)

var (
	ErrNotExist   = fs.ErrNotExist   // Item does not exist
	ErrExist      = fs.ErrExist      // Item already exists
	ErrPermission = fs.ErrPermission // Permission denied
	ErrInvalid    = fs.ErrInvalid    // Invalid operation

	ErrNotConfigured = errors.New("base url and base path not initialized")
	ErrInvalidPath   = errors.New("path is neither a file nor a directory")
	ErrNotAFile      = errors.New("not a file")
	ErrNotADirectory = errors.New("not a directory")
)

type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
