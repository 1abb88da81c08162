// Package remote provides the HTTP client for the Atelier persistence
// service. It implements the collaborator contract the state core
// reconciles against.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/atelier-dev/atelier-store/internal/state"
	"github.com/atelier-dev/atelier-store/pkg/catalog"
)

// DefaultTimeout bounds every request. Remote calls are fire-and-forget
// on the write path, so a hung request only delays its own diagnostic.
const DefaultTimeout = 10 * time.Second

// Client talks to the Atelier REST API. It implements state.Remote.
type Client struct {
	baseURL string
	httpc   *http.Client
}

var _ state.Remote = (*Client)(nil)

// New creates a client for the API at baseURL, e.g. "http://localhost:7090".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithHTTPClient creates a client using a caller-supplied http.Client,
// for custom transports and test control.
func NewWithHTTPClient(baseURL string, httpc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// FetchSnapshot retrieves the full catalog from GET /api/sync.
func (c *Client) FetchSnapshot(ctx context.Context) (*catalog.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/sync", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sync request: %w", err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sync: unexpected status %d", resp.StatusCode)
	}

	var snap catalog.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, fmt.Errorf("sync: decode snapshot: %w", err)
	}
	return &snap, nil
}

// CreateItem persists item via POST /api/<collection>.
func (c *Client) CreateItem(ctx context.Context, kind catalog.Kind, item catalog.Item) error {
	path, err := collectionPath(kind)
	if err != nil {
		return err
	}

	body, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("create %s: encode: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("create %s: %w", kind, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("create %s: unexpected status %d", kind, resp.StatusCode)
	}
	return nil
}

// DeleteItem removes an item via DELETE /api/<collection>/<id>.
func (c *Client) DeleteItem(ctx context.Context, kind catalog.Kind, id string) error {
	path, err := collectionPath(kind)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path+"/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delete %s %s: unexpected status %d", kind, id, resp.StatusCode)
	}
	return nil
}

func collectionPath(kind catalog.Kind) (string, error) {
	switch kind {
	case catalog.KindArtwork:
		return "/api/artworks", nil
	case catalog.KindBook:
		return "/api/books", nil
	case catalog.KindJournal:
		return "/api/journal", nil
	default:
		return "", fmt.Errorf("unknown catalog kind %q", kind)
	}
}

// drainAndClose reads the body to completion so the connection can be
// reused by the transport.
func drainAndClose(body io.ReadCloser) {
	io.Copy(io.Discard, body)
	body.Close()
}
