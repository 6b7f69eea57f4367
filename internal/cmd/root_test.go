package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandEndToEnd(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.py"), []byte("print(1)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.log"), []byte("noise\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "node_modules"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "x.js"), []byte("x\n"), 0o644))

	out := filepath.Join(t.TempDir(), "out.md")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{root, "-o", out, "--ignore", "*.log", "--ignore", "node_modules/", "-q", "--no-color"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "a.py")
	assert.Contains(t, doc, "```python\nprint(1)\n```")
	assert.NotContains(t, doc, "b.log")
	assert.NotContains(t, doc, "x.js")
	assert.Contains(t, doc, "- **Skipped by rules**: 1 files, 1 directories")
}

func TestRootCommandMissingDirectory(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "nope"), "-q", "--no-color"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}

func TestRootCommandRequiresOneArg(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.Error(t, cmd.Execute())
}
