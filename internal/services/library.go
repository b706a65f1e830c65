package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"modkeep/internal/domain"
)

// ModLibrary reads and mutates the mod root directly. Every operation
// re-reads the filesystem: the root is small and may be changed externally
// (by the user or the game's own loader) between calls, so freshness wins
// over caching.
type ModLibrary struct{}

func NewModLibrary() *ModLibrary {
	return &ModLibrary{}
}

func (library *ModLibrary) List(req ListRequest) (ListResult, error) {
	entries, err := os.ReadDir(req.RootPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ListResult{RootMissing: true}, nil
		}
		return ListResult{}, fmt.Errorf("read mods directory: %w", err)
	}

	mods := make([]domain.ModEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		base, disabled := domain.SplitDisabled(entry.Name())
		label := base
		if manifest, ok := ReadManifest(filepath.Join(req.RootPath, entry.Name())); ok {
			label = manifest.Label(base)
		}
		mods = append(mods, domain.ModEntry{
			FolderName: entry.Name(),
			BaseName:   base,
			Label:      label,
			Disabled:   disabled,
		})
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].Label < mods[j].Label })
	return ListResult{Entries: mods}, nil
}

func (library *ModLibrary) Toggle(req ToggleRequest) (ToggleResult, error) {
	folder, err := library.resolve(req.RootPath, req.Label)
	if err != nil {
		return ToggleResult{}, err
	}
	base, disabled := domain.SplitDisabled(folder)
	target := base + domain.DisabledSuffix
	state := domain.StateDisabled
	if disabled {
		target = base
		state = domain.StateEnabled
	}
	if err := os.Rename(filepath.Join(req.RootPath, folder), filepath.Join(req.RootPath, target)); err != nil {
		return ToggleResult{}, fmt.Errorf("rename mod folder: %w", err)
	}
	return ToggleResult{Name: base, State: state}, nil
}

func (library *ModLibrary) Delete(req DeleteRequest) error {
	folder, err := library.resolve(req.RootPath, req.Label)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(filepath.Join(req.RootPath, folder)); err != nil {
		return fmt.Errorf("delete mod folder: %w", err)
	}
	return nil
}

// resolve maps a display label back to the folder currently on disk, by
// re-running the same name resolution the scan used. The label is never a
// join key: two folders can resolve to the same label, in which case the
// first match in directory order wins.
func (library *ModLibrary) resolve(root, label string) (string, error) {
	name := domain.LabelName(label)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrModNotFound, name)
		}
		return "", fmt.Errorf("read mods directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		base, _ := domain.SplitDisabled(entry.Name())
		resolved := base
		if manifest, ok := ReadManifest(filepath.Join(root, entry.Name())); ok && manifest.Name != "" {
			resolved = manifest.Name
		}
		if resolved == name || base == name {
			return entry.Name(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrModNotFound, name)
}
