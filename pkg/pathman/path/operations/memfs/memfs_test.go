package pathmemfs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, m *FileSystem, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(m.Afero(), name, []byte(content), 0644))
	}
}

func TestFileSystem_StatAndList(t *testing.T) {
	m := New()
	seed(t, m, map[string]string{
		"/site/index.html": "<html>",
		"/site/css/a.css":  "a{}",
		"/site/b.txt":      "b",
	})

	assert.True(t, m.IsDir("/site"))
	assert.True(t, m.IsDir("/site/css"))
	assert.True(t, m.IsFile("/site/b.txt"))
	assert.False(t, m.IsDir("/site/b.txt"))
	assert.False(t, m.Exists("/site/missing"))
	assert.False(t, m.IsFile("/site/missing"))

	names, err := m.List("/site")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"b.txt", "css", "index.html"}, names); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	_, err = m.List("/nope")
	assert.Error(t, err)
}

func TestFileSystem_MakeDir(t *testing.T) {
	m := New()

	require.NoError(t, m.MakeDir("/a", 0755))
	require.NoError(t, m.MakeDir("/a/b", 0755))
	assert.True(t, m.IsDir("/a/b"))

	err := m.MakeDir("/x/y", 0755)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "missing parent must fail, got %v", err)
	assert.False(t, m.Exists("/x"))

	err = m.MakeDir("/a", 0755)
	assert.True(t, errors.Is(err, fs.ErrExist), "got %v", err)
}

func TestFileSystem_Remove(t *testing.T) {
	m := New()
	seed(t, m, map[string]string{"/d/f.txt": "f"})

	assert.Error(t, m.RemoveDir("/d"), "non-empty directory")
	assert.Error(t, m.Remove("/d"), "Remove refuses directories")
	assert.Error(t, m.RemoveDir("/d/f.txt"), "RemoveDir refuses files")

	require.NoError(t, m.Remove("/d/f.txt"))
	require.NoError(t, m.RemoveDir("/d"))
	assert.False(t, m.Exists("/d"))

	assert.True(t, errors.Is(m.Remove("/d/f.txt"), fs.ErrNotExist))
}

func TestFileSystem_CopyFile(t *testing.T) {
	m := New()
	seed(t, m, map[string]string{"/src.txt": "payload", "/dst.txt": "a much longer old payload"})

	require.NoError(t, m.CopyFile("/src.txt", "/dst.txt"))
	got, err := m.ReadFile("/dst.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	require.NoError(t, m.CopyFile("/src.txt", "/new.txt"))
	assert.True(t, m.IsFile("/new.txt"))

	assert.Error(t, m.CopyFile("/missing.txt", "/x.txt"))
}

func TestFileSystem_RenameAndWrite(t *testing.T) {
	m := New()

	require.NoError(t, m.WriteFile("/old.txt", []byte("x"), 0644))
	require.NoError(t, m.Rename("/old.txt", "/new.txt"))
	assert.False(t, m.Exists("/old.txt"))

	got, err := m.ReadFile("/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	_, err = m.ReadFile("/old.txt")
	assert.Error(t, err)
}

func TestFileSystem_Abs(t *testing.T) {
	m := New()

	abs, err := m.Abs("a/b")
	require.NoError(t, err)
	assert.Equal(t, "/a/b", abs)

	abs, err = m.Abs("/a/../c/")
	require.NoError(t, err)
	assert.Equal(t, "/c", abs)
}

func TestOverlay_KeepsChangesInMemory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "disk.txt"), []byte("on disk"), 0644))

	m := NewOverlay()

	got, err := m.ReadFile(filepath.Join(dir, "disk.txt"))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(got))

	require.NoError(t, m.CopyFile(filepath.Join(dir, "disk.txt"), filepath.Join(dir, "copy.txt")))
	require.NoError(t, m.MakeDir(filepath.Join(dir, "sub"), 0755))
	assert.True(t, m.IsFile(filepath.Join(dir, "copy.txt")))
	assert.True(t, m.IsDir(filepath.Join(dir, "sub")))

	_, err = os.Stat(filepath.Join(dir, "copy.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(filepath.Join(dir, "sub"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Error(t, m.Remove(filepath.Join(dir, "disk.txt")), "disk entries are read-only")

	wd, err := os.Getwd()
	require.NoError(t, err)
	abs, err := m.Abs("rel")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "rel"), abs)
}

var errFlush = errors.New("flush rejected")

// flakyCloseFs hands out files whose Close fails after the data was written.
type flakyCloseFs struct {
	afero.Fs
}

type flakyCloseFile struct {
	afero.File
}

func (f flakyCloseFile) Close() error {
	_ = f.File.Close()
	return errFlush
}

func (f flakyCloseFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if flag&(os.O_WRONLY|os.O_RDWR) == 0 {
		return file, nil
	}
	return flakyCloseFile{file}, nil
}

func TestFileSystem_WritersReportCloseErrors(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/src.txt", []byte("payload"), 0644))
	m := Wrap(flakyCloseFs{mem})

	err := m.CopyFile("/src.txt", "/dst.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFlush), "got %v", err)
	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, "memfs-copy-close", pathErr.Op)

	err = m.WriteFile("/out.txt", []byte("data"), 0644)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFlush), "got %v", err)
}
