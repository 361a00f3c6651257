package path

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ImGajeed76/pathman/internal/sftptest"

	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
	pathlocal "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/local"
	pathmemfs "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/memfs"
	pathsftp "github.com/ImGajeed76/pathman/pkg/pathman/path/operations/sftp"
)

const dirMarker = "<dir>"

// testEnv is a factory over one backend plus a scratch root inside it.
type testEnv struct {
	factory *Factory
	fs      pathmodels.FileSystem
	root    string
	// strict reports whether MakeDir rejects a parent that is not a directory.
	strict bool
}

type backend struct {
	name string
	// renames reports whether the backend supports renaming directories.
	renames bool
	strict  bool
	open    func(t *testing.T) (pathmodels.FileSystem, string)
}

var backends = []backend{
	{
		name:    "local",
		renames: true,
		strict:  true,
		open: func(t *testing.T) (pathmodels.FileSystem, string) {
			return pathlocal.New(), t.TempDir()
		},
	},
	{
		name:    "memfs",
		renames: true,
		strict:  true,
		open: func(t *testing.T) (pathmodels.FileSystem, string) {
			fsys := pathmemfs.New()
			require.NoError(t, fsys.MakeDir("/work", 0755))
			return fsys, "/work"
		},
	},
	{
		name: "sftp",
		open: func(t *testing.T) (pathmodels.FileSystem, string) {
			fsys := pathsftp.New(sftptest.NewClient(t))
			require.NoError(t, fsys.MakeDir("/work", 0755))
			return fsys, "/work"
		},
	},
}

// forEachBackend runs fn once per backend. Backends that cannot rename directories
// are skipped when needsRename is set.
func forEachBackend(t *testing.T, needsRename bool, fn func(t *testing.T, env *testEnv)) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			if needsRename && !b.renames {
				t.Skip("backend does not rename directories")
			}
			fsys, root := b.open(t)
			env := &testEnv{factory: NewFactory(fsys), fs: fsys, root: root, strict: b.strict}
			env.factory.Init("https://example.com/site", root)
			fn(t, env)
		})
	}
}

// path joins slash separated rel onto the root using the backend separator.
func (e *testEnv) path(rel string) string {
	sep := string(e.fs.Separator())
	if rel == "" {
		return e.root
	}
	return e.root + sep + strings.ReplaceAll(rel, "/", sep)
}

func (e *testEnv) mkdir(t *testing.T, rel string) {
	t.Helper()

	current := e.root
	for _, segment := range strings.Split(rel, "/") {
		current += string(e.fs.Separator()) + segment
		if !e.fs.Exists(current) {
			require.NoError(t, e.fs.MakeDir(current, 0755))
		}
	}
}

func (e *testEnv) writeFile(t *testing.T, rel, content string) {
	t.Helper()

	if i := strings.LastIndexByte(rel, '/'); i > 0 {
		e.mkdir(t, rel[:i])
	}
	require.NoError(t, e.fs.WriteFile(e.path(rel), []byte(content), 0644))
}

func (e *testEnv) readFile(t *testing.T, rel string) string {
	t.Helper()

	data, err := e.fs.ReadFile(e.path(rel))
	require.NoError(t, err)
	return string(data)
}

// tree maps every entry below rel to its content, or dirMarker for directories.
func (e *testEnv) tree(t *testing.T, rel string) map[string]string {
	t.Helper()

	out := map[string]string{}
	var walk func(dir, prefix string)
	walk = func(dir, prefix string) {
		names, err := e.fs.List(dir)
		require.NoError(t, err)
		for _, name := range names {
			child := dir + string(e.fs.Separator()) + name
			if e.fs.IsDir(child) {
				out[prefix+name] = dirMarker
				walk(child, prefix+name+"/")
				continue
			}
			data, err := e.fs.ReadFile(child)
			require.NoError(t, err)
			out[prefix+name] = string(data)
		}
	}
	walk(e.path(rel), "")
	return out
}

// sequence returns a random source that yields values in order, then repeats the last.
func sequence(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[len(values)-1]
		if i < len(values) {
			v = values[i]
			i++
		}
		return v % n
	}
}
