package services

import (
	"encoding/json"
	"os"
	"path/filepath"

	"modkeep/internal/domain"
)

// manifestFileName is the descriptor the game loader expects at the root of
// every mod folder.
const manifestFileName = "manifest.json"

// ReadManifest reads the descriptor directly inside a mod folder. A missing
// or malformed file is a normal outcome, not an error: the manifest only
// feeds the display label.
func ReadManifest(folder string) (domain.Manifest, bool) {
	data, err := os.ReadFile(filepath.Join(folder, manifestFileName))
	if err != nil {
		return domain.Manifest{}, false
	}
	var manifest domain.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return domain.Manifest{}, false
	}
	return manifest, true
}
