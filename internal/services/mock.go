package services

import (
	"context"

	"modkeep/internal/domain"
)

type MockLibrary struct {
	Entries     []domain.ModEntry
	RootMissing bool
	ListErr     error
	ToggleErr   error
	DeleteErr   error
	Toggled     []string
	Deleted     []string
}

func (library *MockLibrary) List(req ListRequest) (ListResult, error) {
	if library.ListErr != nil {
		return ListResult{}, library.ListErr
	}
	return ListResult{Entries: library.Entries, RootMissing: library.RootMissing}, nil
}

func (library *MockLibrary) Toggle(req ToggleRequest) (ToggleResult, error) {
	if library.ToggleErr != nil {
		return ToggleResult{}, library.ToggleErr
	}
	library.Toggled = append(library.Toggled, req.Label)
	return ToggleResult{Name: domain.LabelName(req.Label), State: domain.StateDisabled}, nil
}

func (library *MockLibrary) Delete(req DeleteRequest) error {
	if library.DeleteErr != nil {
		return library.DeleteErr
	}
	library.Deleted = append(library.Deleted, req.Label)
	return nil
}

type MockInstaller struct {
	Requests []InstallRequest
	Result   InstallResult
	Err      error
}

func (installer *MockInstaller) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	if installer.Err != nil {
		return InstallResult{}, installer.Err
	}
	installer.Requests = append(installer.Requests, req)
	return installer.Result, nil
}

type MockFetcher struct {
	Requests []FetchRequest
	Result   FetchResult
	Err      error
}

func (fetcher *MockFetcher) FetchAndInstall(ctx context.Context, req FetchRequest) (FetchResult, error) {
	fetcher.Requests = append(fetcher.Requests, req)
	if fetcher.Err != nil {
		return FetchResult{}, fetcher.Err
	}
	return fetcher.Result, nil
}
