package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, getDefaultConfig(), config)
	})

	t.Run("empty file yields defaults", func(t *testing.T) {
		config, err := LoadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, ", ", config.Separator)
		assert.Equal(t, "any", config.Fault.Kind)
	})

	t.Run("values", func(t *testing.T) {
		config, err := LoadConfig(writeConfig(t, `
separator: " | "
debug: true
log_file: /tmp/listctl.log
fault:
  fail_at: 3
  kind: node
`))
		require.NoError(t, err)
		assert.Equal(t, " | ", config.Separator)
		assert.True(t, config.Debug)
		assert.Equal(t, "/tmp/listctl.log", config.LogFile)
		assert.Equal(t, FaultConfig{FailAt: 3, Kind: "node"}, config.Fault)
	})

	t.Run("invalid kind", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "fault:\n  kind: page\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("negative fail_at", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "fault:\n  fail_at: -2\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "separator: [unclosed\n"))
		assert.Error(t, err)
	})
}
