package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, fileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file
		path := writeConfig(t, t.TempDir(), "log-level: debug\nlog-file: /tmp/ttt.log\nui:\n  disable-mouse: true\n  cell-width: 9\n")

		// When: loading it
		conf, err := Load(path)

		// Then: the file values are used and the rest is defaulted
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "/tmp/ttt.log", conf.LogFile)
		assert.True(t, conf.UI.NoMouse)
		assert.Equal(t, 9, conf.UI.CellWidth)
		assert.Equal(t, 3, conf.UI.CellHeight)
	})

	t.Run("Environment only when there is no file", func(t *testing.T) {
		// Given: a log level in the environment
		t.Setenv("TICTACTOE_LOG_LEVEL", "warn")

		// When: loading without a path
		conf, err := Load("")

		// Then: env and defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.False(t, conf.UI.NoMouse)
		assert.Equal(t, 7, conf.UI.CellWidth)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
	})
}

func TestPath(t *testing.T) {
	t.Run("Environment override wins", func(t *testing.T) {
		t.Setenv(PathEnv, "/etc/tictactoe.yml")

		assert.Equal(t, "/etc/tictactoe.yml", Path(t.TempDir()))
	})

	t.Run("No file anywhere", func(t *testing.T) {
		t.Setenv(PathEnv, "")

		if _, err := xdg.SearchConfigFile(filepath.Join(appName, fileName)); err == nil {
			t.Skip("config present in the XDG dirs")
		}

		assert.Empty(t, Path(t.TempDir()))
	})

	t.Run("Falls back to the working directory", func(t *testing.T) {
		t.Setenv(PathEnv, "")
		dir := t.TempDir()
		path := writeConfig(t, dir, "log-level: info\n")

		if _, err := xdg.SearchConfigFile(filepath.Join(appName, fileName)); err == nil {
			t.Skip("config present in the XDG dirs")
		}

		assert.Equal(t, path, Path(dir))
	})
}
