package config

import (
	"path/filepath"

	"github.com/TodoChain/todos-go-node/cmd/utils"
)

const (
	// LogFormatPlain is a format for colored text
	LogFormatPlain = "plain"
	// LogFormatJSON is a format for json output
	LogFormatJSON = "json"

	defaultConfigDir = "config"
	defaultDataDir   = "data"

	defaultConfigFileName  = "config.toml"
	defaultGenesisJSONName = "genesis.json"
)

var (
	defaultConfigFilePath  = filepath.Join(defaultConfigDir, defaultConfigFileName)
	defaultGenesisJSONPath = filepath.Join(defaultConfigDir, defaultGenesisJSONName)
)

// DefaultConfig returns the default node configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseConfig: DefaultBaseConfig(),
	}
}

// GetConfig returns a configuration rooted at the todos home dir,
// creating the directory layout and a default config file if missing.
func GetConfig() *Config {
	cfg := DefaultConfig()

	cfg.SetRoot(utils.GetTodosHome())
	EnsureRoot(utils.GetTodosHome())

	return cfg
}

// Config defines the top level configuration for a todos node
type Config struct {
	BaseConfig `mapstructure:",squash"`
}

// SetRoot sets the RootDir for all Config structs
func (cfg *Config) SetRoot(root string) *Config {
	cfg.BaseConfig.RootDir = root
	return cfg
}

//-----------------------------------------------------------------------------
// BaseConfig

// BaseConfig defines the base configuration for a todos node
type BaseConfig struct {
	// The root directory for all data.
	// This should be set in viper so it can unmarshal into this struct
	RootDir string `mapstructure:"home"`

	// Path to the JSON file containing the initial application state
	Genesis string `mapstructure:"genesis_file"`

	// Output level for logging
	LogLevel string `mapstructure:"log_level"`

	// Output format: 'plain' (colored text) or 'json'
	LogFormat string `mapstructure:"log_format"`

	// Path to file for logs, "stdout" by default
	LogPath string `mapstructure:"log_path"`

	// Database backend: goleveldb | memdb
	DBBackend string `mapstructure:"db_backend"`

	// Database directory
	DBPath string `mapstructure:"db_dir"`

	// Number of last state versions to keep
	KeepLastStates int64 `mapstructure:"keep_last_states"`

	// Size of the state tree cache
	StateCacheSize int `mapstructure:"state_cache_size"`
}

// DefaultBaseConfig returns a default base configuration for a todos node
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Genesis:        defaultGenesisJSONPath,
		LogLevel:       DefaultPackageLogLevels(),
		LogFormat:      LogFormatPlain,
		LogPath:        "stdout",
		DBBackend:      "goleveldb",
		DBPath:         "data",
		KeepLastStates: 120,
		StateCacheSize: 1000000,
	}
}

// GenesisFile returns the full path to the genesis.json file
func (cfg BaseConfig) GenesisFile() string {
	return rootify(cfg.Genesis, cfg.RootDir)
}

// DBDir returns the full path to the database directory
func (cfg BaseConfig) DBDir() string {
	return rootify(cfg.DBPath, cfg.RootDir)
}

// DefaultLogLevel returns a default log level of "error"
func DefaultLogLevel() string {
	return "error"
}

// DefaultPackageLogLevels returns a default log level setting so all packages
// log at "error", while the `state` and `main` packages log at "info"
func DefaultPackageLogLevels() string {
	return "main:info,state:info,*:" + DefaultLogLevel()
}

//-----------------------------------------------------------------------------
// Utils

// helper function to make config creation independent of root dir
func rootify(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
