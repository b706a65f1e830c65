package services

import "context"

type Library interface {
	List(req ListRequest) (ListResult, error)
	Toggle(req ToggleRequest) (ToggleResult, error)
	Delete(req DeleteRequest) error
}

type Installer interface {
	Install(ctx context.Context, req InstallRequest) (InstallResult, error)
}

type Fetcher interface {
	FetchAndInstall(ctx context.Context, req FetchRequest) (FetchResult, error)
}
