package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// downloadTimeout bounds connecting and receiving the response headers.
// The body copy is left unbounded: a large mod archive on a slow link
// may legitimately stream for much longer.
const downloadTimeout = 30 * time.Second

// Downloader streams a remote archive to the downloads directory and hands
// it to the installer. It is intended to run off the interaction loop; its
// result is delivered back as a message, never by touching UI state.
type Downloader struct {
	client    *http.Client
	installer Installer
	saveDir   string
	logger    *log.Logger
}

func NewDownloader(installer Installer, saveDir string, logger *log.Logger) *Downloader {
	return &Downloader{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           (&net.Dialer{Timeout: downloadTimeout}).DialContext,
				TLSHandshakeTimeout:   downloadTimeout,
				ResponseHeaderTimeout: downloadTimeout,
			},
		},
		installer: installer,
		saveDir:   saveDir,
		logger:    logger,
	}
}

func (downloader *Downloader) FetchAndInstall(ctx context.Context, req FetchRequest) (FetchResult, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return FetchResult{}, fmt.Errorf("download %s: %w", req.URL, err)
	}
	response, err := downloader.client.Do(request)
	if err != nil {
		return FetchResult{}, fmt.Errorf("download %s: %w", req.URL, err)
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return FetchResult{}, fmt.Errorf("download %s: unexpected status %s", req.URL, response.Status)
	}

	name := downloadFileName(response.Header.Get("Content-Disposition"), req.URL)
	if err := os.MkdirAll(downloader.saveDir, 0o755); err != nil {
		return FetchResult{}, fmt.Errorf("create downloads directory: %w", err)
	}
	target := filepath.Join(downloader.saveDir, name)
	output, err := os.Create(target)
	if err != nil {
		return FetchResult{}, fmt.Errorf("save download: %w", err)
	}
	if _, err := io.Copy(output, response.Body); err != nil {
		output.Close()
		return FetchResult{}, fmt.Errorf("save download: %w", err)
	}
	if err := output.Close(); err != nil {
		return FetchResult{}, fmt.Errorf("save download: %w", err)
	}
	downloader.logger.Info("download complete", "url", req.URL, "file", target)

	install, err := downloader.installer.Install(ctx, InstallRequest{ArchivePath: target, RootPath: req.RootPath})
	if err != nil {
		return FetchResult{FileName: name}, err
	}
	return FetchResult{FileName: name, Install: install}, nil
}

// downloadFileName prefers the Content-Disposition filename; otherwise it
// derives a name from the URL's last path segment (query stripped) and
// appends .zip when the result has no recognized archive extension.
func downloadFileName(disposition, rawURL string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return filepath.Base(name)
			}
		}
	}
	name := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		name = path.Base(parsed.Path)
	}
	if name == "" || name == "." || name == "/" {
		name = "download"
	}
	if !SupportedArchive(name) {
		name += ".zip"
	}
	return name
}
