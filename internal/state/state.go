package state

import (
	"modkeep/internal/config"
	"modkeep/internal/domain"
	"modkeep/internal/services"
)

// State is the explicit application state: the loaded configuration, the
// resolved mod root, and the last-computed listing. Every operation takes
// what it needs from here rather than reading ambient globals.
type State struct {
	Config      config.Config
	ModsPath    string
	Entries     []domain.ModEntry
	RootMissing bool
	Cursor      int
}

func NewState(cfg config.Config, modsPath string) *State {
	return &State{
		Config:   cfg,
		ModsPath: modsPath,
	}
}

// SetListing replaces the listing with a fresh scan. The current selection
// is restored by display label when it survives the refresh, and cleared
// otherwise; a periodic refresh must not steal the user's place in the list.
func (appState *State) SetListing(result services.ListResult) {
	selected := appState.SelectedLabel()
	appState.Entries = result.Entries
	appState.RootMissing = result.RootMissing

	appState.Cursor = 0
	if selected != "" {
		for index, entry := range appState.Entries {
			if entry.Label == selected {
				appState.Cursor = index
				break
			}
		}
	}
	appState.clampCursor()
}

// SetModsPath points the state at a new mod root and records it as the
// configured custom path.
func (appState *State) SetModsPath(path string) {
	appState.ModsPath = path
	appState.Config.ModsPath = path
	appState.Entries = nil
	appState.RootMissing = false
	appState.Cursor = 0
}

func (appState *State) Selected() (domain.ModEntry, bool) {
	if appState.Cursor < 0 || appState.Cursor >= len(appState.Entries) {
		return domain.ModEntry{}, false
	}
	return appState.Entries[appState.Cursor], true
}

func (appState *State) SelectedLabel() string {
	entry, ok := appState.Selected()
	if !ok {
		return ""
	}
	return entry.Label
}

func (appState *State) MoveCursor(delta int) {
	appState.Cursor += delta
	appState.clampCursor()
}

func (appState *State) clampCursor() {
	if appState.Cursor >= len(appState.Entries) {
		appState.Cursor = len(appState.Entries) - 1
	}
	if appState.Cursor < 0 {
		appState.Cursor = 0
	}
}
