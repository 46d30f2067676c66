package engine

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varalys/huelint/internal/config"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
}

func TestWalk_FiltersDirsAndExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":                "",
		"src/main.js":               "",
		"src/styles/app.css":        "",
		"src/README.md":             "",
		"src/Upper.JS":              "",
		".git/hooks/pre-commit.js":  "",
		"node_modules/pkg/index.js": "",
		"notes/todo.css":            "",
		"docs/notes/deep.js":        "",
	})

	got, err := Files(context.Background(), dir, config.MustDefault())
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"index.html", "src/main.js", "src/styles/app.css"}, got)
}

func TestWalk_Restartable(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "", "b/c.css": ""})
	pol := config.MustDefault()

	first, err := Files(context.Background(), dir, pol)
	require.NoError(t, err)
	second, err := Files(context.Background(), dir, pol)
	require.NoError(t, err)
	assert.ElementsMatch(t, first, second)
	assert.Len(t, first, 2)
}

func TestWalk_SkipsSymlinkedDirectories(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"real/a.js": ""})
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "linked.js")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	got, err := Files(context.Background(), dir, config.MustDefault())
	require.NoError(t, err)
	assert.Equal(t, []string{"real/a.js"}, got)
}

func TestWalk_HandleErrorStops(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.js": "", "b.js": ""})
	calls := 0
	err := Walk(context.Background(), dir, config.MustDefault(), func(string, string) error {
		calls++
		return os.ErrPermission
	})
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, 1, calls)
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Files(context.Background(), filepath.Join(t.TempDir(), "nope"), config.MustDefault())
	assert.Error(t, err)
}

func TestWalk_SkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits not enforced")
	}
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"locked/hidden.js": "'#fff'",
		"open.js":          "'#fff'",
	})
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	files, err := Files(context.Background(), dir, config.MustDefault())
	require.NoError(t, err)
	assert.Equal(t, []string{"open.js"}, files)

	res, err := ScanWithStats(context.Background(), Config{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, res.FilesScanned)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "open.js", res.Findings[0].File)
}
