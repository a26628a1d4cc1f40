package utils

import (
	"os"
	"path/filepath"
)

var (
	TodosHome   string
	TodosConfig string
)

func GetTodosHome() string {
	if TodosHome != "" {
		return TodosHome
	}

	home := os.Getenv("TODOSHOME")

	if home != "" {
		return home
	}

	return os.ExpandEnv(filepath.Join("$HOME", ".todos"))
}

func GetTodosConfigPath() string {
	if TodosConfig != "" {
		return TodosConfig
	}

	return GetTodosHome() + "/config/config.toml"
}
