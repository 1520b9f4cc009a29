package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/myjobmatch/skillgap/config"
	"github.com/myjobmatch/skillgap/utils"
)

// maxDocumentBytes caps how much of a remote document is read
const maxDocumentBytes = 5 << 20

// HTTPSource reads documents over http(s)
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates an HTTP source using the shared client settings
func NewHTTPSource(cfg *config.Config) *HTTPSource {
	timeout := 30 * time.Second
	if cfg != nil && cfg.HTTPTimeoutSeconds > 0 {
		timeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second
	}

	client := utils.NewHTTPClient(timeout)
	client.Transport = utils.UserAgentMiddleware(client.Transport)

	return &HTTPSource{client: client}
}

// Close releases idle connections
func (h *HTTPSource) Close() error {
	h.client.CloseIdleConnections()
	return nil
}

// Read performs a GET against the location's URL
func (h *HTTPSource) Read(ctx context.Context, loc Location) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc.Raw, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, application/json, text/plain, */*")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", loc.Raw, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, loc.Raw)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if len(data) > maxDocumentBytes {
		return nil, fmt.Errorf("document at %s exceeds %d bytes", loc.Raw, maxDocumentBytes)
	}
	return data, nil
}
