// Package pathmemfs implements the path backend on top of an afero filesystem.
// By default the filesystem lives in memory, which makes it suitable for dry runs
// and hermetic tests.
package pathmemfs

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ImGajeed76/pathman/internal/util"
	pathhelpers "github.com/ImGajeed76/pathman/pkg/pathman/path/helpers"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

type FileSystem struct {
	fs  afero.Fs
	log util.Logger
	// abs resolves relative paths; nil anchors them at the root.
	abs func(string) (string, error)
}

var _ pathmodels.FileSystem = (*FileSystem)(nil)

// New returns a backend over an empty in-memory filesystem.
func New() *FileSystem {
	return Wrap(afero.NewMemMapFs())
}

// Wrap returns a backend over an arbitrary afero filesystem.
func Wrap(afs afero.Fs) *FileSystem {
	return &FileSystem{fs: afs, log: util.GetLogger("pathmemfs")}
}

// NewOverlay returns a backend that reads the host filesystem and keeps every change
// in memory. Relative paths resolve against the process working directory. Entries
// that exist only on disk cannot be removed or renamed through the overlay.
func NewOverlay() *FileSystem {
	base := afero.NewReadOnlyFs(afero.NewOsFs())
	m := Wrap(afero.NewCopyOnWriteFs(base, afero.NewMemMapFs()))
	m.abs = filepath.Abs
	return m
}

// Afero exposes the underlying filesystem.
func (m *FileSystem) Afero() afero.Fs {
	return m.fs
}

func (m *FileSystem) Separator() byte {
	return filepath.Separator
}

// Abs cleans the path and anchors relative paths at the filesystem root, or at the
// working directory for an overlay.
func (m *FileSystem) Abs(path string) (string, error) {
	if m.abs != nil {
		return m.abs(path)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join(string(filepath.Separator), path), nil
}

func (m *FileSystem) Exists(path string) bool {
	ok, err := afero.Exists(m.fs, path)
	return err == nil && ok
}

func (m *FileSystem) IsDir(path string) bool {
	ok, err := afero.IsDir(m.fs, path)
	return err == nil && ok
}

func (m *FileSystem) IsFile(path string) bool {
	info, err := m.fs.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (m *FileSystem) List(path string) ([]string, error) {
	infos, err := afero.ReadDir(m.fs, path)
	if err != nil {
		return nil, &fs.PathError{Op: "memfs-list", Path: path, Err: err}
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

func (m *FileSystem) MakeDir(path string, perm pathmodels.FileMode) error {
	if !m.IsDir(filepath.Dir(path)) {
		return &fs.PathError{Op: "memfs-mkdir-parent", Path: path, Err: fs.ErrNotExist}
	}

	if err := m.fs.Mkdir(path, os.FileMode(perm).Perm()); err != nil {
		return &fs.PathError{Op: "memfs-mkdir", Path: path, Err: err}
	}
	return nil
}

func (m *FileSystem) RemoveDir(path string) error {
	if !m.IsDir(path) {
		return &fs.PathError{Op: "memfs-removedir-notdir", Path: path, Err: fs.ErrInvalid}
	}

	empty, err := afero.IsEmpty(m.fs, path)
	if err != nil {
		return &fs.PathError{Op: "memfs-removedir-stat", Path: path, Err: err}
	}
	if !empty {
		return &fs.PathError{Op: "memfs-removedir-notempty", Path: path, Err: fs.ErrInvalid}
	}

	if err := m.fs.Remove(path); err != nil {
		return &fs.PathError{Op: "memfs-removedir", Path: path, Err: err}
	}
	return nil
}

func (m *FileSystem) Remove(path string) error {
	info, err := m.fs.Stat(path)
	if err != nil {
		return &fs.PathError{Op: "memfs-remove-stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return &fs.PathError{Op: "memfs-remove-isdir", Path: path, Err: fs.ErrInvalid}
	}

	if err := m.fs.Remove(path); err != nil {
		return &fs.PathError{Op: "memfs-remove", Path: path, Err: err}
	}
	return nil
}

func (m *FileSystem) CopyFile(src, dst string) error {
	in, err := m.fs.Open(src)
	if err != nil {
		return &fs.PathError{Op: "memfs-copy-open", Path: src, Err: err}
	}
	defer m.closeFile(in)

	info, err := in.Stat()
	if err != nil {
		return &fs.PathError{Op: "memfs-copy-stat", Path: src, Err: err}
	}

	out, err := m.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &fs.PathError{Op: "memfs-copy-create", Path: dst, Err: err}
	}

	if _, err := pathhelpers.CopyBuffered(out, in, info.Size()); err != nil {
		m.closeFile(out)
		return &fs.PathError{Op: "memfs-copy", Path: dst, Err: err}
	}

	if err := out.Close(); err != nil {
		return &fs.PathError{Op: "memfs-copy-close", Path: dst, Err: err}
	}
	return nil
}

func (m *FileSystem) Rename(src, dst string) error {
	if err := m.fs.Rename(src, dst); err != nil {
		return &fs.PathError{Op: "memfs-rename", Path: src, Err: err}
	}
	return nil
}

func (m *FileSystem) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(m.fs, path)
	if err != nil {
		return nil, &fs.PathError{Op: "memfs-read", Path: path, Err: err}
	}
	return data, nil
}

func (m *FileSystem) WriteFile(path string, data []byte, perm pathmodels.FileMode) error {
	if err := afero.WriteFile(m.fs, path, data, os.FileMode(perm).Perm()); err != nil {
		return &fs.PathError{Op: "memfs-write", Path: path, Err: err}
	}
	return nil
}

func (m *FileSystem) closeFile(file afero.File) {
	if err := file.Close(); err != nil {
		m.log.Warn().Err(err).Str("path", file.Name()).Msg("error closing file")
	}
}
