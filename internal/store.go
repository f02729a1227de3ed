package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

const (
	dirName  = ".tenis-grupos"
	fileName = "config.json"
)

// Dir returns the settings directory: $TENIS_HOME if set, else ~/.tenis-grupos.
func Dir() (string, error) {
	if dir := os.Getenv("TENIS_HOME"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not find home directory")
	}
	return filepath.Join(homeDir, dirName), nil
}

// Path returns the location of config.json.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// LoadConfig reads the config file (defaults if missing), then applies a
// .env file from the working directory and TENIS_* environment overrides.
func LoadConfig() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	cfg, err := LoadConfigFrom(path)
	if err != nil {
		return cfg, err
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, errors.Wrap(err, "load .env")
	}
	envErr := cfg.applyEnv()
	return cfg, envErr
}

// LoadConfigFrom reads a config file without environment overrides.
func LoadConfigFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = Default().PageSize
	}
	return cfg, nil
}

// SaveConfig writes cfg to the default location.
func SaveConfig(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveConfigTo(path, cfg)
}

// SaveConfigTo writes cfg as indented JSON, creating the directory.
func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

// Remember stores the last roster path and preferred action in the config
// file without persisting any environment overrides. An empty defaultAction
// keeps the stored one.
func Remember(lastFile, defaultAction string) error {
	path, err := Path()
	if err != nil {
		return err
	}
	stored, err := LoadConfigFrom(path)
	if err != nil {
		return err
	}
	stored.LastFile = lastFile
	if defaultAction != "" {
		if err := stored.Set("default_action", defaultAction); err != nil {
			return err
		}
	}
	return SaveConfigTo(path, stored)
}
