package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtensions(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
	for _, name := range []string{"b.hcl", "a.toml", "nested/c.yaml", "ignore.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), nil, 0o644))
	}

	files, err := FindFilesByExtensions(root, []string{".hcl", ".toml", ".yaml"})
	require.NoError(t, err)

	expected := []string{
		filepath.Join(root, "a.toml"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.yaml"),
	}
	assert.Equal(t, expected, files)
}

func TestFindFilesByExtensionsEmptyListPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtensions(t.TempDir(), nil)
	})
}
