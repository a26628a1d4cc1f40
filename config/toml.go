package config

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	tmos "github.com/tendermint/tendermint/libs/os"
)

var configTemplate *template.Template

func init() {
	var err error
	if configTemplate, err = template.New("configFileTemplate").Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// EnsureRoot creates the root, config, and data directories if they don't exist,
// and panics if it fails.
func EnsureRoot(rootDir string) {
	if err := tmos.EnsureDir(rootDir, 0700); err != nil {
		panic(err)
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultConfigDir), 0700); err != nil {
		panic(err)
	}
	if err := tmos.EnsureDir(filepath.Join(rootDir, defaultDataDir), 0700); err != nil {
		panic(err)
	}

	configFilePath := filepath.Join(rootDir, defaultConfigFilePath)

	// Write default config file if missing.
	if !tmos.FileExists(configFilePath) {
		writeDefaultConfigFile(configFilePath)
	}
}

func writeDefaultConfigFile(configFilePath string) {
	WriteConfigFile(configFilePath, DefaultConfig())
}

// WriteConfigFile renders config using the template and writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *Config) {
	var buffer bytes.Buffer

	if err := configTemplate.Execute(&buffer, config); err != nil {
		panic(err)
	}

	if err := os.WriteFile(configFilePath, buffer.Bytes(), 0644); err != nil {
		panic(err)
	}
}

// Note: any changes to the comments/variables/mapstructure
// must be reflected in the appropriate struct in config/config.go
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

##### main base config options #####

# Path to the JSON file containing the initial application state
genesis_file = "{{ js .BaseConfig.Genesis }}"

# Database backend: goleveldb | memdb
db_backend = "{{ .BaseConfig.DBBackend }}"

# Database directory
db_dir = "{{ js .BaseConfig.DBPath }}"

# Output level for logging, including package level options
log_level = "{{ .BaseConfig.LogLevel }}"

# Output format: 'plain' (colored text) or 'json'
log_format = "{{ .BaseConfig.LogFormat }}"

# Path to file for logs, "stdout" by default
log_path = "{{ .BaseConfig.LogPath }}"

##### advanced configuration options #####

# Number of last state versions to keep
keep_last_states = {{ .BaseConfig.KeepLastStates }}

# Size of the state tree cache
state_cache_size = {{ .BaseConfig.StateCacheSize }}
`
