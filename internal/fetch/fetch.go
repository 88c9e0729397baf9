// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fetch retrieves declaration files from remote sources.
//
// Two forms are recognized:
//
//	https://example.com/api/contract.yaml
//	git+https://github.com/org/repo.git//api/contract.yaml?ref=v1.2.0
//
// The git form names the repository, then the file inside it after a
// double slash, and optionally a tag or branch as ref.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/albertocavalcante/contractgen/internal/logging"
)

// DefaultTimeout bounds a fetch when Options.Timeout is zero.
const DefaultTimeout = 60 * time.Second

// DefaultRetries is the number of HTTP retries when Options.Retries is zero.
const DefaultRetries = 3

// maxSize caps how much of an HTTP response is read.
const maxSize = 16 << 20

// Backoff bounds between HTTP attempts.
var (
	retryWaitMin = 500 * time.Millisecond
	retryWaitMax = 5 * time.Second
)

// Kind says how a source is retrieved.
type Kind int

const (
	KindHTTP Kind = iota + 1
	KindGit
)

// Source is a parsed remote location.
type Source struct {
	Kind Kind

	// URL is the file URL for KindHTTP and the repository URL for KindGit.
	URL string

	// Ref is the git tag or branch. Empty means the default branch.
	Ref string

	// Path is the file inside the repository, slash separated.
	Path string
}

// String renders the source for display.
func (s Source) String() string {
	if s.Kind != KindGit {
		return s.URL
	}
	out := s.URL + "//" + s.Path
	if s.Ref != "" {
		out += "@" + s.Ref
	}
	return out
}

// Name is the base name of the file the source points at.
func (s Source) Name() string {
	if s.Kind == KindGit {
		return path.Base(s.Path)
	}
	if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return s.URL
}

// IsRemote reports whether location is a source this package fetches.
func IsRemote(location string) bool {
	for _, prefix := range []string{"http://", "https://", "git+"} {
		if strings.HasPrefix(location, prefix) {
			return true
		}
	}
	return false
}

// ParseSource parses a remote location.
func ParseSource(location string) (Source, error) {
	if rest, ok := strings.CutPrefix(location, "git+"); ok {
		return parseGit(rest)
	}
	u, err := url.Parse(location)
	if err != nil {
		return Source{}, fmt.Errorf("parse source: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Source{}, fmt.Errorf("parse source %q: unsupported scheme %q", location, u.Scheme)
	}
	if u.Host == "" {
		return Source{}, fmt.Errorf("parse source %q: missing host", location)
	}
	return Source{Kind: KindHTTP, URL: location}, nil
}

func parseGit(location string) (Source, error) {
	u, err := url.Parse(location)
	if err != nil {
		return Source{}, fmt.Errorf("parse git source: %w", err)
	}
	repo, file, ok := strings.Cut(u.Path, "//")
	if !ok || strings.Trim(file, "/") == "" {
		return Source{}, fmt.Errorf("parse git source %q: missing //path to the declaration file", location)
	}
	ref := u.Query().Get("ref")
	u.Path = repo
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return Source{Kind: KindGit, URL: u.String(), Ref: ref, Path: strings.Trim(file, "/")}, nil
}

// Options configures a fetch.
type Options struct {
	// Timeout bounds network operations. Zero means DefaultTimeout.
	Timeout time.Duration

	// Retries is how often an HTTP fetch is retried after a connection
	// error or a 5xx response. Zero means DefaultRetries; negative disables
	// retries.
	Retries int

	// Client carries HTTP attempts. Defaults to a pooled client that does
	// not share state with http.DefaultClient.
	Client *http.Client

	// Logger receives intermediate failures. Defaults to discarding them.
	Logger *slog.Logger
}

// Result contains the fetched file and where it came from.
type Result struct {
	Data []byte

	// CommitHash is the checked out commit for git sources.
	CommitHash string

	Source Source
}

// Fetch retrieves the file a source points at.
func Fetch(ctx context.Context, src Source, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	switch src.Kind {
	case KindHTTP:
		data, err := fetchHTTP(ctx, src.URL, newClient(opts))
		if err != nil {
			return nil, err
		}
		return &Result{Data: data, Source: src}, nil
	case KindGit:
		return fetchFromGit(ctx, src)
	default:
		return nil, errors.New("fetch: unknown source kind")
	}
}

// leveledSlog reports failed attempts as warnings since they are retried.
type leveledSlog struct {
	inner *slog.Logger
}

func (l leveledSlog) Error(msg string, keysAndValues ...any) { l.inner.Warn(msg, keysAndValues...) }
func (l leveledSlog) Warn(msg string, keysAndValues ...any) { l.inner.Warn(msg, keysAndValues...) }
func (l leveledSlog) Info(msg string, keysAndValues ...any) { l.inner.Info(msg, keysAndValues...) }
func (l leveledSlog) Debug(msg string, keysAndValues ...any) { l.inner.Debug(msg, keysAndValues...) }

// newClient wraps the configured client with retries on connection errors
// and 5xx responses other than 501.
func newClient(opts Options) *http.Client {
	rc := retryablehttp.NewClient()
	if opts.Client != nil {
		rc.HTTPClient = opts.Client
	} else {
		rc.HTTPClient = &http.Client{Transport: cleanhttp.DefaultPooledTransport()}
	}
	switch {
	case opts.Retries < 0:
		rc.RetryMax = 0
	case opts.Retries == 0:
		rc.RetryMax = DefaultRetries
	default:
		rc.RetryMax = opts.Retries
	}
	rc.RetryWaitMin = retryWaitMin
	rc.RetryWaitMax = retryWaitMax
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	rc.Logger = retryablehttp.LeveledLogger(leveledSlog{inner: logger.With("subsystem", "fetch")})
	// Hand the last response back so its status is reported.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return rc.StandardClient()
}

func fetchHTTP(ctx context.Context, location string, client *http.Client) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d: %s", location, resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("fetch %s: response larger than %d bytes", location, maxSize)
	}
	return data, nil
}

// fetchFromGit makes a shallow sparse clone holding only the file's
// directory and reads the file.
func fetchFromGit(ctx context.Context, src Source) (*Result, error) {
	tmpDir, err := os.MkdirTemp("", "contractgen-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	args := []string{"clone", "--quiet", "--depth=1", "--filter=blob:none", "--sparse", "--single-branch"}
	if src.Ref != "" {
		args = append(args, "--branch="+src.Ref)
	}
	args = append(args, src.URL, tmpDir)
	if err := git(ctx, args...); err != nil {
		return nil, fmt.Errorf("git clone %s: %w", src.URL, err)
	}

	if dir := path.Dir(src.Path); dir != "." {
		if err := git(ctx, "-C", tmpDir, "sparse-checkout", "set", "--no-cone", "/"+dir+"/"); err != nil {
			return nil, fmt.Errorf("sparse checkout: %w", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmpDir, filepath.FromSlash(src.Path)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}

	return &Result{
		Data:       data,
		CommitHash: getGitHash(tmpDir),
		Source:     src,
	}, nil
}

func git(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// getGitHash returns the current commit hash for a repository.
func getGitHash(repoDir string) string {
	data, err := os.ReadFile(filepath.Join(repoDir, ".git", "HEAD"))
	if err != nil {
		return ""
	}

	content := strings.TrimSpace(string(data))

	// Detached HEAD, which is what a shallow clone of a tag leaves.
	if len(content) == 40 && isHex(content) {
		return content
	}

	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		data, err := os.ReadFile(filepath.Join(repoDir, ".git", filepath.FromSlash(ref)))
		if err != nil {
			return packedRef(repoDir, ref)
		}
		hash := strings.TrimSpace(string(data))
		if len(hash) >= 40 && isHex(hash[:40]) {
			return hash[:40]
		}
	}

	return ""
}

// packedRef looks ref up in .git/packed-refs.
func packedRef(repoDir, ref string) string {
	data, err := os.ReadFile(filepath.Join(repoDir, ".git", "packed-refs"))
	if err != nil {
		return ""
	}
	for line := range strings.Lines(string(data)) {
		hash, name, ok := strings.Cut(strings.TrimSpace(line), " ")
		if ok && name == ref && len(hash) == 40 && isHex(hash) {
			return hash
		}
	}
	return ""
}

func isHex(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
