package ui

import (
	"time"

	"modkeep/internal/services"
)

type installResultMsg struct {
	result services.InstallResult
	err    error
}

type fetchResultMsg struct {
	result services.FetchResult
	err    error
}

type refreshTickMsg time.Time
