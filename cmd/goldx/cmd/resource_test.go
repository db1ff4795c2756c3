package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldenacre/extensions/core/errors"
)

func TestResourceList(t *testing.T) {
	res := run(t, "", "resource", "--list")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "goldx.res.goldx.toml\n")
	assert.Contains(t, res.stdout, "goldx.res.sample.txt\n")
}

func TestResourceText(t *testing.T) {
	res := run(t, "", "resource", "SAMPLE.TXT")
	require.NoError(t, res.err)
	assert.Equal(t, "the quick BROWN fox jumps over the lazy dog\n", res.stdout)
}

func TestResourceMissing(t *testing.T) {
	res := run(t, "", "resource", "missing.png")
	require.NoError(t, res.err)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, `no resource matches "missing.png"`)

	res = run(t, "", "resource", "--strict", "missing.png")
	require.Error(t, res.err)
	assert.True(t, errors.IsNotFound(res.err))
}

func TestResourceDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "Tazmania.jpg"), []byte("JPEGDATA"), 0o600))

	res := run(t, "", "resource", "--dir", dir, "--list")
	require.NoError(t, res.err)
	assert.Equal(t, "goldx.img.Tazmania.jpg\n", res.stdout)

	res = run(t, "", "resource", "--dir", dir, "--size", "tazmania.JPG")
	require.NoError(t, res.err)
	assert.Regexp(t, `bytes\s+8 goldx\.img\.Tazmania\.jpg`, res.stdout)
}

func TestResourceDirPrefixFromEnvironment(t *testing.T) {
	t.Setenv("GOLDX_RESOURCES_PREFIX", "App")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o600))

	res := run(t, "", "resource", "--dir", dir, "--list")
	require.NoError(t, res.err)
	assert.Equal(t, "App.a.txt\n", res.stdout)
}

func TestResourceDirNotDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	res := run(t, "", "resource", "--dir", file, "--list")
	assert.Error(t, res.err)
}
