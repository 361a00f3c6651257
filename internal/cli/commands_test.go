package cli_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ImGajeed76/pathman/internal/cli"
	"github.com/ImGajeed76/pathman/pkg/pathman/console"
	pathmodels "github.com/ImGajeed76/pathman/pkg/pathman/path/models"
)

func TestResolveCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"docs/index.html": "<html>"})

	res := inRoot(t, root, "resolve",
		filepath.Join(root, "docs"),
		baseURL+"/docs/index.html",
		filepath.Join(root, "docs", "nothing"),
	)

	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, pathmodels.ErrInvalidPath)

	want := []string{
		"directory\t" + filepath.Join(root, "docs") + "\t" + baseURL + "/docs",
		"file\t" + filepath.Join(root, "docs", "index.html") + "\t" + baseURL + "/docs/index.html",
	}
	if diff := cmp.Diff(want, lines(res.stdout)); diff != "" {
		t.Errorf("resolve output mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCmd_NotConfigured(t *testing.T) {
	res := run(t, nil, "resolve", "/tmp/a.txt")
	assert.ErrorIs(t, res.err, pathmodels.ErrNotConfigured)
}

func TestConversionCmds(t *testing.T) {
	root := t.TempDir()

	res := inRoot(t, root, "url", filepath.Join(root, "a", "b.txt"))
	require.NoError(t, res.err)
	assert.Equal(t, baseURL+"/a/b.txt\n", res.stdout)

	res = inRoot(t, root, "path", baseURL+"/a/b.txt")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "a", "b.txt")+"\n", res.stdout)
}

func TestSettingsFile(t *testing.T) {
	root := t.TempDir()
	settings := filepath.Join(t.TempDir(), "pathman.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("base_url: "+baseURL+"\nbase_path: "+root+"\n"), 0o644))

	res := run(t, nil, "--config", settings, "path", baseURL+"/x.txt")
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "x.txt")+"\n", res.stdout)

	res = run(t, nil, "--config", settings, "--base-url", "https://other", "url", filepath.Join(root, "x.txt"))
	require.NoError(t, res.err)
	assert.Equal(t, "https://other/x.txt\n", res.stdout, "flags must win over the settings file")

	res = run(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "path", "x")
	assert.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestCopyCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"site/index.html":   "<html>",
		"site/css/main.css": "body{}",
	})

	res := inRoot(t, root, "cp", filepath.Join(root, "site"), baseURL+"/backup")
	require.NoError(t, res.err)

	res = inRoot(t, root, "cp", filepath.Join(root, "site", "index.html"), filepath.Join(root, "index.copy.html"))
	require.NoError(t, res.err)

	assert.Equal(t, map[string]string{
		"site":                "<dir>",
		"site/index.html":     "<html>",
		"site/css":            "<dir>",
		"site/css/main.css":   "body{}",
		"backup":              "<dir>",
		"backup/index.html":   "<html>",
		"backup/css":          "<dir>",
		"backup/css/main.css": "body{}",
		"index.copy.html":     "<html>",
	}, readTree(t, root))
}

func TestMemoryFlag(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"site/index.html": "<html>"})
	before := readTree(t, root)

	res := inRoot(t, root, "--memory", "cp", filepath.Join(root, "site"), filepath.Join(root, "backup"))
	require.NoError(t, res.err)
	res = inRoot(t, root, "--memory", "mkdir", filepath.Join(root, "a", "b"))
	require.NoError(t, res.err)

	assert.Equal(t, before, readTree(t, root))
}

func TestMoveCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "payload", "dir/x.txt": "x"})
	require.NoError(t, os.Mkdir(filepath.Join(root, "target"), 0o755))

	res := inRoot(t, root, "mv", filepath.Join(root, "a.txt"), filepath.Join(root, "b.txt"))
	require.NoError(t, res.err)

	res = inRoot(t, root, "mv", filepath.Join(root, "dir"), filepath.Join(root, "missing"))
	assert.ErrorIs(t, res.err, pathmodels.ErrNotADirectory)

	res = inRoot(t, root, "mv", filepath.Join(root, "dir"), filepath.Join(root, "target"))
	require.NoError(t, res.err)

	assert.Equal(t, map[string]string{
		"b.txt":        "payload",
		"target":       "<dir>",
		"target/x.txt": "x",
	}, readTree(t, root))
}

func TestRemoveCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "a", "dir/sub/x.txt": "x", "keep.txt": "k"})

	prompter := &stubPrompter{confirm: false}
	res := run(t, prompter, "--base-url", baseURL, "--base-path", root, "rm", filepath.Join(root, "a.txt"), filepath.Join(root, "dir"))
	require.NoError(t, res.err)
	assert.Equal(t, []string{"Delete 2 entries?"}, prompter.asked)
	assert.Equal(t, []console.Entry{
		{Path: filepath.Join(root, "a.txt")},
		{Path: filepath.Join(root, "dir"), Dir: true},
	}, prompter.entries)
	assert.Contains(t, res.stderr, "aborted")
	assert.Len(t, readTree(t, root), 5)

	res = inRoot(t, root, "rm", "--yes", filepath.Join(root, "a.txt"), baseURL+"/dir")
	require.NoError(t, res.err)
	assert.Equal(t, map[string]string{"keep.txt": "k"}, readTree(t, root))

	// Nothing is deleted when any argument cannot be resolved.
	res = inRoot(t, root, "rm", "--yes", filepath.Join(root, "keep.txt"), filepath.Join(root, "gone"))
	assert.ErrorIs(t, res.err, pathmodels.ErrInvalidPath)
	assert.FileExists(t, filepath.Join(root, "keep.txt"))

	res = inRoot(t, root, "rm", "--yes", filepath.Join(root, "gone.txt"))
	assert.ErrorIs(t, res.err, pathmodels.ErrNotAFile)
}

func TestMkdirCmd(t *testing.T) {
	root := t.TempDir()

	res := inRoot(t, root, "mkdir", "--mode", "0700", filepath.Join(root, "a", "b"), baseURL+"/c")
	require.NoError(t, res.err)

	info, err := os.Stat(filepath.Join(root, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
	assert.DirExists(t, filepath.Join(root, "c"))

	res = inRoot(t, root, "mkdir", "--mode", "rwx", filepath.Join(root, "d"))
	assert.ErrorIs(t, res.err, cli.ErrInvalidArgument)
}

func TestUniqueCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"report.pdf": ""})

	res := inRoot(t, root, "unique", filepath.Join(root, "report.pdf"))
	require.NoError(t, res.err)

	got := lines(res.stdout)[0]
	assert.NotEqual(t, filepath.Join(root, "report.pdf"), got)
	assert.Regexp(t, `report\d+\.pdf$`, got)
	assert.NoFileExists(t, got)

	res = inRoot(t, root, "unique", filepath.Join(root, "free.pdf"))
	require.NoError(t, res.err)
	assert.Equal(t, filepath.Join(root, "free.pdf")+"\n", res.stdout)
}

func TestListCmd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"b.txt": "", "a/x.txt": "", "c/y.txt": ""})

	res := inRoot(t, root, "ls", baseURL)
	require.NoError(t, res.err)
	if diff := cmp.Diff([]string{"a/", "b.txt", "c/"}, lines(res.stdout)); diff != "" {
		t.Errorf("ls output mismatch (-want +got):\n%s", diff)
	}

	res = inRoot(t, root, "ls", filepath.Join(root, "b.txt"))
	assert.ErrorIs(t, res.err, pathmodels.ErrNotADirectory)
}

func TestConfigCmd(t *testing.T) {
	res := run(t, nil, "config", "set", "base-url", baseURL)
	require.NoError(t, res.err)

	res = run(t, nil, "config", "get", "base-url")
	require.NoError(t, res.err)
	assert.Equal(t, baseURL+"\n", res.stdout)

	res = run(t, nil, "config", "set", "sftp-password", "hunter2")
	require.NoError(t, res.err)

	prompter := &stubPrompter{choice: 1, input: "/srv/www"}
	res = run(t, prompter, "config", "set")
	require.NoError(t, res.err)
	assert.Equal(t, []string{"Which value do you want to set?", "base-path"}, prompter.asked)
	assert.Equal(t, []console.Choice{
		{Key: "base-url", Value: baseURL},
		{Key: "base-path"},
		{Key: "sftp-password", Value: "hunter2", Secret: true},
	}, prompter.choices)
	assert.Equal(t, "", prompter.current)
	assert.False(t, prompter.secret)

	prompter = &stubPrompter{input: "/srv/www"}
	res = run(t, prompter, "config", "set", "base-path")
	require.NoError(t, res.err)
	assert.Equal(t, "/srv/www", prompter.current, "the editor starts from the remembered value")

	res = run(t, nil, "config", "get", "base-path")
	require.NoError(t, res.err)
	assert.Equal(t, "/srv/www\n", res.stdout)

	// Remembered values fill in the base pair.
	res = run(t, nil, "path", baseURL+"/a.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "/srv/www/a.txt\n", res.stdout)

	for _, key := range []string{"base-url", "base-path"} {
		res = run(t, nil, "config", "delete", key)
		require.NoError(t, res.err)
	}
	res = run(t, nil, "config", "get", "base-url")
	assert.ErrorContains(t, res.err, "base-url is not set")

	res = run(t, nil, "config", "set", "colour", "blue")
	assert.True(t, errors.Is(res.err, cli.ErrInvalidArgument))

	res = run(t, nil, "config", "delete")
	assert.True(t, errors.Is(res.err, cli.ErrInvalidArgument))
	res = run(t, nil, "config", "delete", "--all", "base-url")
	assert.True(t, errors.Is(res.err, cli.ErrInvalidArgument))

	res = run(t, nil, "config", "delete", "--all")
	require.NoError(t, res.err)
	res = run(t, nil, "config", "get", "sftp-password")
	assert.ErrorContains(t, res.err, "sftp-password is not set")
}

func TestVersionCmd(t *testing.T) {
	res := run(t, nil, "version")
	require.NoError(t, res.err)
	assert.Regexp(t, `^pathman \d+\.\d+\.\d+`, res.stdout)
}
