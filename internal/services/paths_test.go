package services

import (
	"path/filepath"
	"testing"
)

func TestResolveModsDirPrefersConfiguredPath(t *testing.T) {
	configured := t.TempDir()
	if got := ResolveModsDir(configured); got != configured {
		t.Fatalf("ResolveModsDir = %q, want %q", got, configured)
	}
}

func TestResolveModsDirIgnoresMissingConfiguredPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	got := ResolveModsDir(missing)
	if got == missing {
		t.Fatal("a nonexistent configured path must not be returned")
	}
	if got == "" {
		t.Fatal("ResolveModsDir must always return a path")
	}
}

func TestResolveGameDirAlwaysReturnsPath(t *testing.T) {
	if got := ResolveGameDir(); got == "" {
		t.Fatal("ResolveGameDir must always return a path")
	}
}
