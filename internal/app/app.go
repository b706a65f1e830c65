package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"modkeep/internal/config"
	"modkeep/internal/services"
	"modkeep/internal/state"
	"modkeep/internal/ui"
)

func Run() {
	logger := newLogger()

	cfg := config.DefaultConfig()
	loaded, err := config.LoadConfig()
	if err == nil {
		cfg = loaded
	} else {
		logger.Warn("config load failed, using defaults", "err", err)
	}
	overrides := config.ParseFlags()

	modsPath := services.ResolveModsDir(overrides.Apply(cfg))
	appState := state.NewState(cfg, modsPath)

	library := services.NewModLibrary()
	installer := services.NewArchiveInstaller(logger)
	fetcher := services.NewDownloader(installer, services.DefaultDownloadDir(), logger)

	model := ui.NewModel(appState, library, installer, fetcher, logger)
	if listing, err := library.List(services.ListRequest{RootPath: modsPath}); err == nil {
		appState.SetListing(listing)
		if listing.RootMissing {
			model = model.WithStatus(fmt.Sprintf("Mods folder not found: %s - is the mod loader installed?", modsPath))
		} else {
			model = model.WithStatus(fmt.Sprintf("Found %d mod(s)", len(listing.Entries)))
		}
	} else {
		model = model.WithStatus(fmt.Sprintf("List error: %v", err))
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		fmt.Println("modkeep error:", err)
		return
	}
	if provider, ok := finalModel.(ui.ConfigProvider); ok {
		if err := config.SaveConfigIfChanged(cfg, provider.ConfigSnapshot()); err != nil {
			logger.Warn("config save failed", "err", err)
		}
	}
}

// newLogger writes to a file next to the config: stderr belongs to the TUI.
// When no log file can be opened the logger discards output rather than
// failing startup.
func newLogger() *log.Logger {
	path, err := config.LogPath()
	if err == nil {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				return log.NewWithOptions(file, log.Options{ReportTimestamp: true})
			}
		}
	}
	return log.New(io.Discard)
}
