// Package source downloads block files from peer nodes.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goodnatureofminers/blockstream-importer/internal/blockstream/model"
)

// DefaultMaxFileSize bounds a single downloaded block file.
const DefaultMaxFileSize = 64 << 20

var (
	// ErrUnexpectedStatus is returned for non 200 responses.
	ErrUnexpectedStatus = errors.New("unexpected http status")
	// ErrFileTooLarge is returned when a body exceeds the configured limit.
	ErrFileTooLarge = errors.New("block file exceeds size limit")
)

// HTTPSource fetches block files with GET <node url>/<filename>.
type HTTPSource struct {
	client  *http.Client
	maxSize int64
}

// NewHTTPSource creates an HTTPSource. A nil client selects http.DefaultClient,
// a non-positive maxSize selects DefaultMaxFileSize.
func NewHTTPSource(client *http.Client, maxSize int64) *HTTPSource {
	if client == nil {
		client = http.DefaultClient
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}
	return &HTTPSource{client: client, maxSize: maxSize}
}

// Fetch downloads filename from node. The request is bound to ctx.
func (s *HTTPSource) Fetch(ctx context.Context, node model.Node, filename string) ([]byte, error) {
	target, err := fileURL(node.URL, filename)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drain a little so the connection can be reused
		_, _ = io.CopyN(io.Discard, resp.Body, 4<<10)
		return nil, fmt.Errorf("get %s: %w: %d", target, ErrUnexpectedStatus, resp.StatusCode)
	}
	if resp.ContentLength > s.maxSize {
		return nil, fmt.Errorf("get %s: %w: %d bytes", target, ErrFileTooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", target, err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("get %s: %w", target, ErrFileTooLarge)
	}
	return data, nil
}

func fileURL(base, filename string) (string, error) {
	if base == "" {
		return "", errors.New("node url is empty")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse node url %q: %w", base, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("node url %q: unsupported scheme %q", base, u.Scheme)
	}
	return u.JoinPath(strings.TrimPrefix(filename, "/")).String(), nil
}
