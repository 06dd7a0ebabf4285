package awsmeta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateCacheDir points the OS cache dir resolution at a temp dir.
func isolateCacheDir(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	return home
}

func TestRecreateCaches(t *testing.T) {
	isolateCacheDir(t)

	path, err := RecreateCaches(false)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(cacheDirName, servicesFileName)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, packagedServices, raw)

	t.Run("cache is preferred by Load", func(t *testing.T) {
		meta, err := Load()
		require.NoError(t, err)
		assert.NotEmpty(t, meta.Services)
	})

	t.Run("corrupt cache is an error, not a silent fallback", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))
		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoad_FallsBackToPackaged(t *testing.T) {
	isolateCacheDir(t)

	meta, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, meta.Services)
}

func TestRecreateCaches_UpdatePackagedOutsideCheckout(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	_, err = RecreateCaches(true)
	require.Error(t, err, "updating packaged values requires a source checkout")
}
