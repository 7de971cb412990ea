package config

import (
	"os"
	"path/filepath"
)

func IsDebug() bool {
	return os.Getenv("MUCK_DEBUG") == "1"
}

func GetRuntimePath() string {
	path := os.Getenv("MUCK_RUNTIME_PATH")
	if path == "" {
		path = ".muckraker"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
