package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.ModsPath != "" {
		t.Fatalf("expected defaults, got %+v", config)
	}
}

func TestLoadConfigCorruptFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err == nil {
		t.Fatal("expected an error for corrupt config")
	}
	if config.ModsPath != "" {
		t.Fatalf("corrupt config must yield defaults, got %+v", config)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := SaveConfig(Config{ModsPath: "/games/stardew/Mods"}); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.ModsPath != "/games/stardew/Mods" {
		t.Fatalf("ModsPath = %q", loaded.ModsPath)
	}
}

func TestSaveConfigIfChangedSkipsUnchanged(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	loaded := Config{ModsPath: "/persisted/Mods"}
	if err := SaveConfigIfChanged(loaded, loaded); err != nil {
		t.Fatalf("SaveConfigIfChanged: %v", err)
	}
	path := filepath.Join(dir, configDirName, configFileName)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("exiting without an explicit change must not write the config file")
	}

	if err := SaveConfigIfChanged(loaded, Config{ModsPath: "/custom/Mods"}); err != nil {
		t.Fatalf("SaveConfigIfChanged: %v", err)
	}
	result, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if result.ModsPath != "/custom/Mods" {
		t.Fatalf("ModsPath = %q", result.ModsPath)
	}
}

func TestLoadConfigIgnoresUnknownFields(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, configDirName, configFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `{"mods_path": "/mods", "theme": "dark"}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.ModsPath != "/mods" {
		t.Fatalf("ModsPath = %q", config.ModsPath)
	}
}
