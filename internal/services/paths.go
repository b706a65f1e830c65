package services

import (
	"os"
	"path/filepath"
	"runtime"
)

// ResolveModsDir picks the mods directory: a configured path that exists on
// disk wins, then the first existing well-known install location, then a
// home-directory fallback that need not exist yet. It never fails.
func ResolveModsDir(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}
	for _, candidate := range modsCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "StardewValley", "Mods")
}

// ResolveGameDir locates the game installation folder. It is only used to
// seed the mods-path prompt, so failure degrades to the mods directory
// parent and finally the home directory.
func ResolveGameDir() string {
	for _, candidate := range gameCandidates() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	mods := ResolveModsDir("")
	if info, err := os.Stat(mods); err == nil && info.IsDir() && filepath.Base(mods) == "Mods" {
		return filepath.Dir(mods)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return home
}

// DefaultDownloadDir is where fetched archives are saved before install.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, "Downloads")
}

func modsCandidates() []string {
	candidates := []string{}
	for _, game := range gameCandidates() {
		candidates = append(candidates, filepath.Join(game, "Mods"))
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return candidates
	}
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			candidates = append([]string{filepath.Join(appData, "StardewValley", "Mods")}, candidates...)
		}
	case "darwin":
		candidates = append([]string{filepath.Join(home, ".config", "StardewValley", "Mods")}, candidates...)
	default:
		candidates = append([]string{filepath.Join(home, ".config", "StardewValley", "Mods")}, candidates...)
	}
	return candidates
}

func gameCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files (x86)\Steam\steamapps\common\Stardew Valley`,
			`C:\Program Files\Steam\steamapps\common\Stardew Valley`,
		}
	case "darwin":
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam", "steamapps", "common", "Stardew Valley"),
		}
	default:
		return []string{
			filepath.Join(home, ".local", "share", "Steam", "steamapps", "common", "Stardew Valley"),
			filepath.Join(home, ".steam", "steam", "steamapps", "common", "Stardew Valley"),
		}
	}
}
