package domain

import (
	"fmt"
	"strings"
)

// DisabledSuffix marks a mod folder the game loader should skip.
const DisabledSuffix = ".disabled"

// ModEntry is one folder under the mod root, as seen by a single scan.
type ModEntry struct {
	FolderName string // raw name on disk, possibly carrying the disabled suffix
	BaseName   string // folder name with the disabled suffix stripped
	Label      string // display label derived from the manifest or the base name
	Disabled   bool
}

// Manifest is the optional descriptor found inside a mod folder.
// Both fields are independently optional; unknown fields are ignored.
type Manifest struct {
	Name    string `json:"Name"`
	Version string `json:"Version"`
}

// Label computes the display label for a mod, falling back to the folder
// base name when the manifest carries no name.
func (manifest Manifest) Label(fallback string) string {
	name := manifest.Name
	if name == "" {
		name = fallback
	}
	if manifest.Version != "" {
		return fmt.Sprintf("%s (v%s)", name, manifest.Version)
	}
	return name
}

// SplitDisabled strips the disabled suffix from a folder name and reports
// whether it was present.
func SplitDisabled(folderName string) (string, bool) {
	if strings.HasSuffix(folderName, DisabledSuffix) {
		return strings.TrimSuffix(folderName, DisabledSuffix), true
	}
	return folderName, false
}

// LabelName returns the name portion of a display label, with any trailing
// version annotation removed.
func LabelName(label string) string {
	if index := strings.Index(label, " (v"); index >= 0 {
		return label[:index]
	}
	return label
}
