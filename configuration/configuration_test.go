package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfiguration(), c)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
store:
  data_dir: /var/lib/player
log:
  format: json
grid:
  width: 3
  height: 2
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/player", c.Store.DataDir)
	assert.Equal(t, 128, c.Store.CacheSize)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, GridConfig{Width: 3, Height: 2}, c.Grid)
}

func TestLoad_CollectsAllErrors(t *testing.T) {
	path := writeConfig(t, `
store:
  data_dir: ""
  cache_size: 0
log:
  format: xml
`)
	_, err := Load(path)
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Len(t, merr.Errors, 3)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "grid: [1, 2"))
	assert.Error(t, err)
}
