package services

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/charmbracelet/log"
	"github.com/nwaples/rardecode/v2"
)

type archiveFormat int

const (
	formatUnknown archiveFormat = iota
	formatZip
	formatSevenZip
	formatRar
)

func formatFor(path string) archiveFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return formatZip
	case ".7z":
		return formatSevenZip
	case ".rar":
		return formatRar
	default:
		return formatUnknown
	}
}

// ArchiveInstaller extracts mod archives into the mod root. Extraction is
// verbatim: a well-packaged archive carries one top-level folder holding the
// descriptor, but that is not enforced. A failed extraction leaves whatever
// was already written in place.
type ArchiveInstaller struct {
	logger *log.Logger
}

func NewArchiveInstaller(logger *log.Logger) *ArchiveInstaller {
	return &ArchiveInstaller{logger: logger}
}

func (installer *ArchiveInstaller) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	if _, err := os.Stat(req.ArchivePath); err != nil {
		if os.IsNotExist(err) {
			return InstallResult{}, fmt.Errorf("%w: %s", ErrFileNotFound, req.ArchivePath)
		}
		return InstallResult{}, fmt.Errorf("stat archive: %w", err)
	}
	format := formatFor(req.ArchivePath)
	if format == formatUnknown {
		return InstallResult{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(req.ArchivePath))
	}
	if err := os.MkdirAll(req.RootPath, 0o755); err != nil {
		return InstallResult{}, fmt.Errorf("create mods directory: %w", err)
	}

	result := InstallResult{ArchiveName: filepath.Base(req.ArchivePath)}
	var err error
	switch format {
	case formatZip:
		result.Warning, err = extractZip(ctx, req.ArchivePath, req.RootPath)
	case formatSevenZip:
		err = extractSevenZip(ctx, req.ArchivePath, req.RootPath)
	case formatRar:
		err = extractRar(ctx, req.ArchivePath, req.RootPath)
	}
	if err != nil {
		return InstallResult{}, fmt.Errorf("extract %s: %w", result.ArchiveName, err)
	}
	installer.logger.Info("mod installed", "archive", result.ArchiveName, "root", req.RootPath)
	return result, nil
}

// extractZip also pre-scans the entry list for a descriptor at any depth;
// absence produces an advisory warning but never blocks extraction.
func extractZip(ctx context.Context, archivePath, root string) (string, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	warning := ""
	if !zipHasDescriptor(reader.File) {
		warning = fmt.Sprintf("no %s found in %s; this may not be a valid mod package",
			manifestFileName, filepath.Base(archivePath))
	}
	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return warning, err
		}
		if err := writeZipEntry(file, root); err != nil {
			return warning, err
		}
	}
	return warning, nil
}

func zipHasDescriptor(files []*zip.File) bool {
	for _, file := range files {
		if strings.Contains(strings.ToLower(file.Name), manifestFileName) {
			return true
		}
	}
	return false
}

func writeZipEntry(file *zip.File, root string) error {
	target, err := entryTarget(root, file.Name)
	if err != nil {
		return err
	}
	info := file.FileInfo()
	if info.IsDir() {
		return os.MkdirAll(target, 0o755)
	}
	source, err := file.Open()
	if err != nil {
		return err
	}
	defer source.Close()
	return writeEntryFile(target, source, info.Mode())
}

func extractSevenZip(ctx context.Context, archivePath, root string) error {
	reader, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := entryTarget(root, file.Name)
		if err != nil {
			return err
		}
		info := file.FileInfo()
		if info.IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		source, err := file.Open()
		if err != nil {
			return err
		}
		err = writeEntryFile(target, source, info.Mode())
		source.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractRar(ctx context.Context, archivePath, root string) error {
	reader, err := rardecode.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		header, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		target, err := entryTarget(root, header.Name)
		if err != nil {
			return err
		}
		if header.IsDir {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := writeEntryFile(target, reader, header.Mode()); err != nil {
			return err
		}
	}
}

// entryTarget joins an archive entry name onto the mod root, rejecting names
// that would escape it.
func entryTarget(root, name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry escapes destination: %s", name)
	}
	return filepath.Join(root, clean), nil
}

func writeEntryFile(target string, source io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	perm := mode.Perm()
	if perm == 0 {
		perm = 0o644
	}
	output, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(output, source); err != nil {
		output.Close()
		return err
	}
	return output.Close()
}

// SupportedArchive reports whether a file name carries one of the archive
// extensions the installer can dispatch on.
func SupportedArchive(name string) bool {
	return formatFor(name) != formatUnknown
}
