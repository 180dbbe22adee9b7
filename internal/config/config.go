package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const devConnectionString = "file:./local.db?cache=shared&mode=rwc"

type Config struct {
	DB     DBConfig     `toml:"database"`
	Output OutputConfig `toml:"output"`
}

type DBConfig struct {
	ConnectionString string `toml:"connection_string"` // The entire DB connection string.
}

type OutputConfig struct {
	Color bool `toml:"color"`
}

func Default() *Config {
	return &Config{Output: OutputConfig{Color: true}}
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".config", "ftracker")
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the default config file.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads the configuration at path. A missing file yields the
// defaults; environment overrides apply either way.
func LoadConfigFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// A missing .env file is fine.
	_ = godotenv.Load()

	if cfg.DB.ConnectionString == "" {
		cfg.DB.ConnectionString = os.Getenv("TURSO_DATABASE_URL")
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.DB.ConnectionString = devConnectionString
	}

	return cfg, nil
}
