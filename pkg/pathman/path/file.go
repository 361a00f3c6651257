package path

import (
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

type File struct {
	base
}

var _ Entity = (*File)(nil)

func (f *File) Kind() Kind {
	return KindFile
}

// Copy writes the bytes of the file to the target path, replacing whatever file is
// there.
func (f *File) Copy(target Entity) error {
	if err := f.requireFile("copy"); err != nil {
		return err
	}
	f.factory.log.Debug().Str("src", f.path).Str("dst", target.Path()).Msg("Copying file")
	return f.fs().CopyFile(f.path, target.Path())
}

func (f *File) Move(target Entity) error {
	if err := f.requireFile("move"); err != nil {
		return err
	}
	f.factory.log.Debug().Str("src", f.path).Str("dst", target.Path()).Msg("Moving file")
	return f.fs().Rename(f.path, target.Path())
}

func (f *File) Delete() error {
	if err := f.requireFile("delete"); err != nil {
		return err
	}
	f.factory.log.Debug().Str("path", f.path).Msg("Deleting file")
	return f.fs().Remove(f.path)
}

// EnsureExists creates the parent directory chain. The file itself is not created.
func (f *File) EnsureExists(mode pathmodels.FileMode) error {
	return f.ParentDirectory().EnsureExists(mode)
}

// MakeUnique appends random digits to the filename, ahead of the extension, until the
// path no longer exists. It does nothing when the path is free.
func (f *File) MakeUnique() {
	if !f.fs().Exists(f.path) {
		return
	}

	info := f.info()
	name, suffix := info.stem(f.path), info.suffix()
	for f.fs().Exists(name + suffix) {
		name += strconv.Itoa(f.factory.intN(11))
	}
	f.path = name + suffix
}

// ReadText returns the content of the file decoded from the named IANA encoding.
func (f *File) ReadText(encodingName string) (string, error) {
	if err := f.requireFile("read-text"); err != nil {
		return "", err
	}

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", &pathmodels.PathError{Op: "read-text-get-encoding", Path: f.path, Err: err}
	}

	content, err := f.fs().ReadFile(f.path)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(content)
	if err != nil {
		return "", &pathmodels.PathError{Op: "read-text-decode", Path: f.path, Err: err}
	}
	return string(decoded), nil
}

// WriteText encodes content with the named IANA encoding and writes it to the file,
// creating or truncating it. The parent directory must exist.
func (f *File) WriteText(content, encodingName string) error {
	if f.fs().IsDir(f.path) {
		return &pathmodels.PathError{Op: "write-text", Path: f.path, Err: pathmodels.ErrNotAFile}
	}

	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return &pathmodels.PathError{Op: "write-text-get-encoding", Path: f.path, Err: err}
	}

	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return &pathmodels.PathError{Op: "write-text-encode", Path: f.path, Err: err}
	}

	return f.fs().WriteFile(f.path, encoded, 0644)
}

func (f *File) requireFile(op string) error {
	if !f.fs().IsFile(f.path) {
		return &pathmodels.PathError{Op: op, Path: f.path, Err: pathmodels.ErrNotAFile}
	}
	return nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		enc = encoding.Nop
	}
	return enc, nil
}
