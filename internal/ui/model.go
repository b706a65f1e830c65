package ui

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"modkeep/internal/config"
	"modkeep/internal/domain"
	"modkeep/internal/services"
	"modkeep/internal/state"
)

// refreshInterval is how often the listing is re-read in the background; the
// mod root may be mutated externally at any time.
const refreshInterval = 3 * time.Second

const (
	inputNone    = ""
	inputArchive = "archive"
	inputURL     = "url"
	inputPath    = "path"
)

type Model struct {
	state     *state.State
	library   services.Library
	installer services.Installer
	fetcher   services.Fetcher
	logger    *log.Logger
	keys      KeyMap

	status     string
	showHelp   bool
	confirming bool   // a delete awaits y/n
	inputMode  string // which prompt is capturing keystrokes
	inputValue string
	busy       bool // an install or download is in flight
	width      int
	height     int
	viewTop    int
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

func NewModel(appState *state.State, library services.Library, installer services.Installer, fetcher services.Fetcher, logger *log.Logger) Model {
	return Model{
		state:     appState,
		library:   library,
		installer: installer,
		fetcher:   fetcher,
		logger:    logger,
		keys:      DefaultKeyMap(),
		status:    "Ready",
		width:     100,
		height:    30,
	}
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

func (model Model) ConfigSnapshot() config.Config {
	return model.state.Config
}

func (model Model) Init() tea.Cmd {
	return refreshTickCmd()
}

func refreshTickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.ensureCursorVisible()
		return model, nil
	case refreshTickMsg:
		// Non-reentrant by construction: the refresh runs synchronously on
		// the interaction loop, and is skipped while an install or download
		// is in flight or an input or confirm prompt would be disturbed.
		if model.inputMode == inputNone && !model.confirming && !model.busy {
			model = model.refreshListing(false)
		}
		return model, refreshTickCmd()
	case installResultMsg:
		model.busy = false
		if typed.err != nil {
			model.status = fmt.Sprintf("Install error: %v", typed.err)
			return model, nil
		}
		model.status = installStatus(typed.result)
		model = model.refreshListing(false)
		return model, nil
	case fetchResultMsg:
		model.busy = false
		if typed.err != nil {
			model.status = fmt.Sprintf("Download error: %v", typed.err)
			return model, nil
		}
		model.status = installStatus(typed.result.Install)
		model = model.refreshListing(false)
		return model, nil
	default:
		return model, nil
	}
}

func installStatus(result services.InstallResult) string {
	if result.Warning != "" {
		return fmt.Sprintf("Installed %s - warning: %s", result.ArchiveName, result.Warning)
	}
	return fmt.Sprintf("Installed %s", result.ArchiveName)
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit) && model.inputMode == inputNone:
		return model, tea.Quit
	case model.confirming && key.Matches(msg, model.keys.Confirm):
		return model.deleteSelected()
	case model.confirming && key.Matches(msg, model.keys.Cancel):
		model.confirming = false
		model.status = "Delete cancelled"
		return model, nil
	case model.confirming:
		return model, nil
	case model.inputMode != inputNone:
		return model.handleInput(msg)
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Up):
		model.state.MoveCursor(-1)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Down):
		model.state.MoveCursor(1)
		model.ensureCursorVisible()
		return model, nil
	case key.Matches(msg, model.keys.Toggle):
		return model.toggleSelected()
	case key.Matches(msg, model.keys.Delete):
		entry, ok := model.state.Selected()
		if !ok {
			model.status = "Select a mod to delete"
			return model, nil
		}
		model.confirming = true
		model.status = fmt.Sprintf("Delete %s? This cannot be undone (y/n)", entry.Label)
		return model, nil
	case key.Matches(msg, model.keys.Install):
		if model.busy {
			model.status = "Busy - wait for the current task"
			return model, nil
		}
		model.inputMode = inputArchive
		model.inputValue = ""
		model.status = "Archive path: "
		return model, nil
	case key.Matches(msg, model.keys.Download):
		if model.busy {
			model.status = "A download is already running"
			return model, nil
		}
		model.inputMode = inputURL
		model.inputValue = ""
		model.status = "Download URL: "
		return model, nil
	case key.Matches(msg, model.keys.Path):
		model.inputMode = inputPath
		model.inputValue = model.pathSuggestion()
		model.status = fmt.Sprintf("Mods folder: %s", model.inputValue)
		return model, nil
	case key.Matches(msg, model.keys.Open):
		if err := openFolder(model.state.ModsPath); err != nil {
			model.status = fmt.Sprintf("Open folder error: %v", err)
		} else {
			model.status = fmt.Sprintf("Opened %s", model.state.ModsPath)
		}
		return model, nil
	case key.Matches(msg, model.keys.Refresh):
		model = model.refreshListing(true)
		return model, nil
	default:
		return model, nil
	}
}

func (model Model) handleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		model.inputMode = inputNone
		model.inputValue = ""
		model.status = "Cancelled"
		return model, nil
	case tea.KeyEnter:
		mode := model.inputMode
		value := strings.TrimSpace(model.inputValue)
		model.inputMode = inputNone
		model.inputValue = ""
		if value == "" {
			model.status = "Cancelled"
			return model, nil
		}
		switch mode {
		case inputArchive:
			return model.beginInstall(value)
		case inputURL:
			return model.beginDownload(value)
		case inputPath:
			return model.changeModsPath(value), nil
		}
		return model, nil
	case tea.KeyBackspace, tea.KeyDelete:
		if runes := []rune(model.inputValue); len(runes) > 0 {
			model.inputValue = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			model.inputValue += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			model.inputValue += " "
		}
	}
	model.status = fmt.Sprintf("%s%s", inputPrompt(model.inputMode), model.inputValue)
	return model, nil
}

func inputPrompt(mode string) string {
	switch mode {
	case inputArchive:
		return "Archive path: "
	case inputURL:
		return "Download URL: "
	case inputPath:
		return "Mods folder: "
	default:
		return ""
	}
}

func (model Model) toggleSelected() (tea.Model, tea.Cmd) {
	entry, ok := model.state.Selected()
	if !ok {
		model.status = "Select a mod to enable/disable"
		return model, nil
	}
	result, err := model.library.Toggle(services.ToggleRequest{
		RootPath: model.state.ModsPath,
		Label:    entry.Label,
	})
	if err != nil {
		model.status = fmt.Sprintf("Toggle error: %v", err)
		return model, nil
	}
	if result.State == domain.StateDisabled {
		model.status = fmt.Sprintf("Disabled: %s", result.Name)
	} else {
		model.status = fmt.Sprintf("Enabled: %s", result.Name)
	}
	model = model.refreshListing(false)
	return model, nil
}

func (model Model) deleteSelected() (tea.Model, tea.Cmd) {
	model.confirming = false
	entry, ok := model.state.Selected()
	if !ok {
		model.status = "Selection is gone"
		return model, nil
	}
	err := model.library.Delete(services.DeleteRequest{
		RootPath: model.state.ModsPath,
		Label:    entry.Label,
	})
	if err != nil {
		model.status = fmt.Sprintf("Delete error: %v", err)
		return model, nil
	}
	model.status = fmt.Sprintf("Deleted: %s", entry.Label)
	model = model.refreshListing(false)
	return model, nil
}

func (model Model) beginInstall(archivePath string) (tea.Model, tea.Cmd) {
	model.busy = true
	model.status = fmt.Sprintf("Installing %s...", archivePath)
	request := services.InstallRequest{ArchivePath: archivePath, RootPath: model.state.ModsPath}
	installer := model.installer
	return model, func() tea.Msg {
		result, err := installer.Install(context.Background(), request)
		return installResultMsg{result: result, err: err}
	}
}

func (model Model) beginDownload(url string) (tea.Model, tea.Cmd) {
	model.busy = true
	model.status = fmt.Sprintf("Downloading %s...", url)
	request := services.FetchRequest{URL: url, RootPath: model.state.ModsPath}
	fetcher := model.fetcher
	return model, func() tea.Msg {
		result, err := fetcher.FetchAndInstall(context.Background(), request)
		return fetchResultMsg{result: result, err: err}
	}
}

func (model Model) changeModsPath(path string) Model {
	model.state.SetModsPath(path)
	if err := config.SaveConfig(model.state.Config); err != nil {
		model.logger.Warn("config save failed", "err", err)
	}
	model.status = fmt.Sprintf("Mods folder changed to %s", path)
	return model.refreshListing(false)
}

// pathSuggestion seeds the mods-folder prompt: the current root when it
// exists, otherwise the detected game installation folder.
func (model Model) pathSuggestion() string {
	if _, err := os.Stat(model.state.ModsPath); err == nil {
		return model.state.ModsPath
	}
	return services.ResolveGameDir()
}

// refreshListing re-reads the mod root synchronously. The scan is a single
// ReadDir over tens of entries, so blocking the loop is fine.
func (model Model) refreshListing(announce bool) Model {
	result, err := model.library.List(services.ListRequest{RootPath: model.state.ModsPath})
	if err != nil {
		model.status = fmt.Sprintf("List error: %v", err)
		return model
	}
	model.state.SetListing(result)
	if result.RootMissing {
		model.status = fmt.Sprintf("Mods folder not found: %s - is the mod loader installed?", model.state.ModsPath)
	} else if announce {
		model.status = fmt.Sprintf("Found %d mod(s)", len(result.Entries))
	}
	model.ensureCursorVisible()
	return model
}

func openFolder(path string) error {
	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", path).Start()
	case "darwin":
		return exec.Command("open", path).Start()
	default:
		return exec.Command("xdg-open", path).Start()
	}
}

func (model *Model) ensureCursorVisible() {
	total := len(model.state.Entries)
	if total == 0 {
		model.viewTop = 0
		return
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	if model.state.Cursor < model.viewTop {
		model.viewTop = model.state.Cursor
	}
	if model.state.Cursor >= model.viewTop+listHeight {
		model.viewTop = model.state.Cursor - listHeight + 1
	}
	maxTop := total - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	return model.height - 5
}
