package services

import "errors"

var (
	// ErrFileNotFound reports an install request for a path that does not exist.
	ErrFileNotFound = errors.New("archive file not found")
	// ErrUnsupportedFormat reports an archive extension outside zip/7z/rar.
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	// ErrModNotFound reports a toggle or delete whose target could not be
	// re-resolved on disk, typically a stale selection or an external change.
	ErrModNotFound = errors.New("mod not found")
)
