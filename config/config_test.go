package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "goleveldb", cfg.DBBackend)
	assert.Equal(t, LogFormatPlain, cfg.LogFormat)
	assert.Equal(t, int64(120), cfg.KeepLastStates)
	assert.Equal(t, 1000000, cfg.StateCacheSize)
}

func TestEnsureRoot(t *testing.T) {
	root := t.TempDir()

	EnsureRoot(root)

	configPath := filepath.Join(root, defaultConfigFilePath)
	if _, err := os.Stat(configPath); err != nil {
		t.Fatalf("Config file was not written: %s", err)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	cfg := DefaultConfig()
	require.NoError(t, v.Unmarshal(cfg))

	assert.Equal(t, DefaultBaseConfig().DBPath, cfg.DBPath)
	assert.Equal(t, DefaultBaseConfig().KeepLastStates, cfg.KeepLastStates)
	assert.Equal(t, DefaultBaseConfig().LogLevel, cfg.LogLevel)
}
