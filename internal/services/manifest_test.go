package services

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, folder, content string) {
	t.Helper()
	if err := os.MkdirAll(folder, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(folder, manifestFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadManifest(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "CoolMod")
	writeManifest(t, folder, `{"Name": "Cool Mod", "Version": "1.2", "Author": "someone"}`)

	manifest, ok := ReadManifest(folder)
	if !ok {
		t.Fatal("expected a manifest")
	}
	if manifest.Name != "Cool Mod" || manifest.Version != "1.2" {
		t.Fatalf("manifest = %+v", manifest)
	}
}

func TestReadManifestMissingFile(t *testing.T) {
	if _, ok := ReadManifest(t.TempDir()); ok {
		t.Fatal("missing manifest must read as absent")
	}
}

func TestReadManifestMalformed(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "BrokenMod")
	writeManifest(t, folder, `{"Name": "Broken`)

	if _, ok := ReadManifest(folder); ok {
		t.Fatal("malformed manifest must read as absent")
	}
}

func TestReadManifestPartialFields(t *testing.T) {
	folder := filepath.Join(t.TempDir(), "NoVersion")
	writeManifest(t, folder, `{"Name": "No Version"}`)

	manifest, ok := ReadManifest(folder)
	if !ok || manifest.Name != "No Version" || manifest.Version != "" {
		t.Fatalf("manifest = %+v, ok = %v", manifest, ok)
	}
}
