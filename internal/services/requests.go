package services

type ListRequest struct {
	RootPath string
}

type ToggleRequest struct {
	RootPath string
	Label    string
}

type DeleteRequest struct {
	RootPath string
	Label    string
}

type InstallRequest struct {
	ArchivePath string
	RootPath    string
}

type FetchRequest struct {
	URL      string
	RootPath string
}
