package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	configDirName  = "modkeep"
	configFileName = "config.json"
	logFileName    = "modkeep.log"
)

func DefaultConfig() Config {
	return Config{}
}

func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

func LogPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, configDirName, logFileName), nil
}

// LoadConfig reads the persisted configuration. A missing file yields the
// defaults with no error; a corrupt file yields the defaults plus the error,
// so callers can log it and carry on.
func LoadConfig() (Config, error) {
	config := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return config, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	var stored fileConfig
	if err := json.Unmarshal(data, &stored); err != nil {
		return config, err
	}
	return mergeConfig(config, stored), nil
}

func SaveConfig(config Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// SaveConfigIfChanged writes the configuration only when it differs from
// the value loaded at startup: the file changes on an explicit user
// action, never as a side effect of exiting.
func SaveConfigIfChanged(loaded, current Config) error {
	if current == loaded {
		return nil
	}
	return SaveConfig(current)
}

func mergeConfig(base Config, stored fileConfig) Config {
	merged := base
	if stored.ModsPath != nil {
		merged.ModsPath = *stored.ModsPath
	}
	return merged
}
