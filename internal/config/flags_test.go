package config

import "testing"

func TestSessionOverrideWinsForTheSession(t *testing.T) {
	cfg := Config{ModsPath: "/persisted/Mods"}
	overrides := SessionOverrides{ModsPath: "/tmp/session/Mods"}

	if got := overrides.Apply(cfg); got != "/tmp/session/Mods" {
		t.Fatalf("Apply = %q", got)
	}
	if cfg.ModsPath != "/persisted/Mods" {
		t.Fatalf("an override must not touch the persisted config, got %+v", cfg)
	}
}

func TestEmptyOverrideFallsBackToConfig(t *testing.T) {
	cfg := Config{ModsPath: "/persisted/Mods"}
	if got := (SessionOverrides{}).Apply(cfg); got != "/persisted/Mods" {
		t.Fatalf("Apply = %q", got)
	}
}
