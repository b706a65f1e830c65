package services

import "modkeep/internal/domain"

type ListResult struct {
	Entries []domain.ModEntry
	// RootMissing distinguishes a nonexistent mod root from an empty one.
	RootMissing bool
}

type ToggleResult struct {
	Name  string
	State domain.ModState
}

type InstallResult struct {
	ArchiveName string
	// Warning carries the advisory "may not be a valid mod package" note;
	// it never blocks extraction.
	Warning string
}

type FetchResult struct {
	FileName string
	Install  InstallResult
}
