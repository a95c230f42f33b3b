package config

import (
	"fmt"
	"os"
	"shelf/internal/catalog"
	"shelf/internal/logging"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML file read before flags are parsed. Its values
// become flag defaults, so flags always win.
type Config struct {
	File     string   `yaml:"file"`
	Formats  []string `yaml:"formats"`
	LogLevel string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		File:     DefaultCatalogPath(),
		Formats:  catalog.DefaultFormats(),
		LogLevel: logging.DefaultLevel,
	}
}

// Load reads the config file at path. A missing file yields Default().
// SHELF_FILE overrides the file entry.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if file.File != "" && os.Getenv("SHELF_FILE") == "" {
		cfg.File = file.File
	}
	if len(file.Formats) > 0 {
		cfg.Formats = file.Formats
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg, nil
}

func (c Config) FormatSet() catalog.FormatSet {
	return catalog.FormatSet(c.Formats)
}
