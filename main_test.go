package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/config"
)

func writeConfig(t *testing.T, logFile string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	content := "log-level: debug\nlog-file: " + logFile + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(config.PathEnv, path)
}

func silenceOutput(t *testing.T) {
	t.Helper()

	out, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	stdout, stderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = out, out
	t.Cleanup(func() {
		os.Stdout, os.Stderr = stdout, stderr
		out.Close()
	})
}

func TestRun(t *testing.T) {
	t.Run("Replay writes the log file and exits with 0", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "tictactoe.log")
		writeConfig(t, logFile)
		silenceOutput(t)

		// When: replaying one move
		code := run([]string{"replay", "4"})

		// Then: the run succeeded and the move was logged
		assert.Equal(t, 0, code)

		logs, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(logs), "move played")
	})

	t.Run("Unknown command exits with 1", func(t *testing.T) {
		writeConfig(t, filepath.Join(t.TempDir(), "tictactoe.log"))
		silenceOutput(t)

		assert.Equal(t, 1, run([]string{"serve"}))
	})

	t.Run("Unopenable log file is recovered into exit code 1", func(t *testing.T) {
		writeConfig(t, filepath.Join(t.TempDir(), "missing", "tictactoe.log"))
		silenceOutput(t)

		assert.Equal(t, 1, run([]string{"replay"}))
	})
}

func TestInitLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "tictactoe.log")
	conf := &config.Config{LogLevel: "warn", LogFile: logFile}

	// When: building the logger
	logger, level, file := initLogger(conf)

	// Then: records below the configured level are dropped and the file can be closed
	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, file.Close())

	assert.Equal(t, "WARN", level.Level().String())

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.NotContains(t, string(logs), "hidden")
	assert.Contains(t, string(logs), "shown")
}
