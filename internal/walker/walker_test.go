package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/dir2md/internal/ignore"
)

// writeTree creates the given relative paths under root. Paths ending in "/"
// become directories; everything else becomes a small file.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		abs := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(abs, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(abs), 0o755))
		require.NoError(t, os.WriteFile(abs, []byte("content of "+p+"\n"), 0o644))
	}
}

func relPaths(res *Result) []string {
	out := make([]string, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, e.RelPath)
	}
	return out
}

func TestWalkEndToEndScenario(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.py", "b.log", "node_modules/x.js")

	rules := ignore.NewRuleSet("*.log", "node_modules/")
	res, err := Walk(root, rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.py"}, relPaths(res))
	assert.Equal(t, 1, res.FilesIncluded)
	assert.Equal(t, 1, res.FilesSkipped, "b.log")
	assert.Equal(t, 1, res.DirsSkipped, "node_modules")
	assert.Equal(t, 0, res.DirsIncluded)

	// The pruned directory's child never shows up anywhere.
	for _, item := range res.Skipped {
		assert.NotContains(t, item.Path, "x.js")
	}
}

func TestWalkPreOrderSorted(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "z.txt", "a.txt", "mid/inner.txt", "mid/sub/deep.txt")

	res, err := Walk(root, ignore.NewRuleSet())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"a.txt",
		"mid",
		"mid/inner.txt",
		"mid/sub",
		"mid/sub/deep.txt",
		"z.txt",
	}, relPaths(res))
}

func TestWalkPruningIsIrrevocable(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "build/keep.txt", "main.go")

	// The negation can never fire: build/ is pruned before keep.txt is seen.
	rules := ignore.NewRuleSet("build/", "!build/keep.txt")
	res, err := Walk(root, rules)
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go"}, relPaths(res))
	assert.Equal(t, 1, res.DirsSkipped)
	assert.Equal(t, 0, res.FilesSkipped)
}

func TestWalkNegationRestoresFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "keep.log", "other.log")

	res, err := Walk(root, ignore.NewRuleSet("*.log", "!keep.log"))
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.log"}, relPaths(res))
	assert.Equal(t, 1, res.FilesSkipped)
}

func TestWalkIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/x.txt", "a/y.txt", "b/z.txt", "top.md")

	rules := ignore.NewRuleSet("*.md")
	first, err := Walk(root, rules)
	require.NoError(t, err)
	second, err := Walk(root, rules)
	require.NoError(t, err)

	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.TotalBytes, second.TotalBytes)
	assert.Equal(t, first.FilesIncluded, second.FilesIncluded)
	assert.Equal(t, first.Skipped, second.Skipped)
}

func TestWalkCountsBytes(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("123"), 0o644))

	res, err := Walk(root, ignore.NewRuleSet())
	require.NoError(t, err)

	assert.Equal(t, int64(8), res.TotalBytes)
	assert.Equal(t, int64(5), res.Entries[0].Size)
}

func TestWalkSymlinkCycle(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevation on windows")
	}
	root := t.TempDir()
	writeTree(t, root, "sub/file.txt")
	require.NoError(t, os.Symlink(root, filepath.Join(root, "sub", "loop")))

	res, err := Walk(root, ignore.NewRuleSet())
	require.NoError(t, err)

	cycles := 0
	for _, item := range res.Skipped {
		if item.Reason == ReasonSymlinkCycle {
			cycles++
			assert.Equal(t, "sub/loop", item.Path)
		}
	}
	assert.Equal(t, 1, cycles, "exactly one skip for the cyclic link")
	assert.Equal(t, []string{"sub", "sub/file.txt"}, relPaths(res))
}

func TestWalkSymlinkToFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevation on windows")
	}
	root := t.TempDir()
	writeTree(t, root, "real.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "real.txt"), filepath.Join(root, "link.txt")))

	res, err := Walk(root, ignore.NewRuleSet("real.txt"))
	require.NoError(t, err)

	// The link stats as a regular file and is matched under its own name.
	assert.Equal(t, []string{"link.txt"}, relPaths(res))
}

func TestWalkUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	root := t.TempDir()
	writeTree(t, root, "locked/secret.txt", "open.txt")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	res, err := Walk(root, ignore.NewRuleSet())
	require.NoError(t, err, "permission errors are not fatal")

	assert.Contains(t, relPaths(res), "open.txt")
	found := false
	for _, item := range res.Skipped {
		if item.Reason == ReasonPermission {
			found = true
		}
	}
	assert.True(t, found, "unreadable directory recorded as skipped")
}

func TestWalkMaxFileSize(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "big.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "small.txt"), []byte("ok"), 0o644))

	res, err := Walk(root, ignore.NewRuleSet(), WithMaxFileSize(10))
	require.NoError(t, err)

	assert.Equal(t, []string{"small.txt"}, relPaths(res))
	assert.Equal(t, 1, res.FilesSkipped)
	assert.Equal(t, ReasonSizeLimit, res.Skipped[0].Reason)
}

func TestWalkFatalOnBadRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), ignore.NewRuleSet())
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = Walk(file, ignore.NewRuleSet())
	assert.Error(t, err)
}
