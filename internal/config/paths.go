package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const defaultCatalogFile = "stock_libros.txt"

// DefaultCatalogPath is relative to the working directory unless
// SHELF_FILE says otherwise.
func DefaultCatalogPath() string {
	if p := os.Getenv("SHELF_FILE"); p != "" {
		return p
	}
	return defaultCatalogFile
}

func DefaultConfigPath() string {
	if p := os.Getenv("SHELF_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "shelf", "config.yaml")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}

// ShortenPath replaces the home directory prefix with ~ for display.
func ShortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
