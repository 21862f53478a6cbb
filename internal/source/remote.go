package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fenghaitao/agent-os/internal/logging"
	"github.com/fenghaitao/agent-os/internal/messages"
)

// Defaults for the public Agent OS template mirror.
const (
	DefaultHost    = "raw.githubusercontent.com"
	DefaultOrg     = "fenghaitao"
	DefaultRepo    = "agent-os"
	DefaultBranch  = "main"
	DefaultTimeout = 30 * time.Second

	// ManifestName is the per-directory index listing the files a remote directory contains.
	ManifestName = "manifest.yml"

	userAgent = "agent-os"
)

// BaseURL builds https://<host>/<org>/<repo>/<branch>.
func BaseURL(host, org, repo, branch string) string {
	return fmt.Sprintf("https://%s/%s/%s/%s",
		strings.Trim(host, "/"), strings.Trim(org, "/"), strings.Trim(repo, "/"), strings.Trim(branch, "/"))
}

// StatusError reports a non-2xx response from the remote source.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.SourceStatusFmt, e.URL, e.Status)
}

// Manifest lists the files of a remote directory, relative to that directory.
type Manifest struct {
	Files []string `yaml:"files"`
}

// Remote downloads templates over HTTP.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote returns a provider for baseURL. A nil client gets a dedicated
// client with DefaultTimeout.
func NewRemote(baseURL string, client *http.Client) (*Remote, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New(messages.SourceRemoteBaseURLRequired)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf(messages.SourceRemoteBaseURLInvalidFmt, baseURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf(messages.SourceRemoteBaseURLInvalidFmt, baseURL, errors.New("expected http(s)://host/..."))
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Remote{baseURL: trimmed, client: client}, nil
}

// Mode implements Provider.
func (r *Remote) Mode() Mode { return ModeRemote }

// Location implements Provider.
func (r *Remote) Location() string { return r.baseURL }

// URLFor returns the fetch URL for a relative source path.
func (r *Remote) URLFor(rel string) string {
	return r.baseURL + "/" + strings.TrimPrefix(rel, "/")
}

// Open implements Provider. Any non-2xx response is returned as *StatusError,
// including 404: a file the installer asked for is expected to exist remotely.
func (r *Remote) Open(ctx context.Context, rel string) (io.ReadCloser, error) {
	name, ok := cleanRel(rel)
	if !ok {
		return nil, fmt.Errorf(messages.SourceInvalidPathFmt, rel)
	}
	target := r.URLFor(name)
	resp, err := r.get(ctx, target)
	if err != nil {
		return nil, err
	}
	if !isSuccess(resp.StatusCode) {
		_ = resp.Body.Close()
		return nil, &StatusError{URL: target, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return resp.Body, nil
}

// List implements Provider by fetching <dir>/manifest.yml. A missing manifest
// maps to ErrNotFound; other failures are returned as-is.
func (r *Remote) List(ctx context.Context, dir string) ([]string, error) {
	name, ok := cleanRel(dir)
	if !ok {
		return nil, fmt.Errorf(messages.SourceInvalidPathFmt, dir)
	}
	manifestURL := r.URLFor(path.Join(name, ManifestName))
	resp, err := r.get(ctx, manifestURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf(messages.SourceNotFoundFmt, ErrNotFound, manifestURL)
	}
	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{URL: manifestURL, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf(messages.SourceRequestFailedFmt, manifestURL, err)
	}
	return ParseManifest(data, manifestURL)
}

// ParseManifest decodes and validates manifest data. origin is used in errors.
// Entries are normalized, deduplicated and kept in document order.
func ParseManifest(data []byte, origin string) ([]string, error) {
	var manifest Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&manifest); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(messages.SourceManifestDecodeFmt, origin, err)
	}
	seen := make(map[string]struct{}, len(manifest.Files))
	files := make([]string, 0, len(manifest.Files))
	for _, entry := range manifest.Files {
		cleaned, ok := cleanRel(entry)
		if !ok || strings.HasSuffix(strings.TrimSpace(entry), "/") {
			return nil, fmt.Errorf(messages.SourceManifestInvalidEntryFmt, origin, entry)
		}
		if _, dup := seen[cleaned]; dup {
			continue
		}
		seen[cleaned] = struct{}{}
		files = append(files, cleaned)
	}
	return files, nil
}

func (r *Remote) get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.SourceRequestCreateFmt, target, err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := r.client.Do(req) //nolint:gosec // URL is built from the configured template mirror
	if err != nil {
		return nil, fmt.Errorf(messages.SourceRequestFailedFmt, target, err)
	}
	logger := logging.Component("source")
	logger.Debug().Str("url", target).Int("status", resp.StatusCode).Msg("Fetched remote source")
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
