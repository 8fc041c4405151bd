package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesNested(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "fitkeeper", "data")

	got, err := EnsureDir(target)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	fi, err := os.Stat(target)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o700), fi.Mode().Perm())
	}

	// second call is a no-op
	_, err = EnsureDir(target)
	require.NoError(t, err)
}

func TestEnsureDir_FailsWhenPathIsFile(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "taken")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := EnsureDir(file)
	require.Error(t, err)
}

func TestReadOrCreateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.key")
	calls := 0
	gen := func() []byte {
		calls++
		return []byte("0123456789abcdef0123456789abcdef")
	}

	first, err := ReadOrCreateKey(path, gen)
	require.NoError(t, err)
	second, err := ReadOrCreateKey(path, gen)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}
}

func TestReadOrCreateKey_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "device.key")

	_, err := ReadOrCreateKey(path, func() []byte { return []byte("k") })
	require.Error(t, err)
}
