// Package remote is a storage.Store that talks to the /api of a running
// "tv serve". Server presence is probed once per client; without a server
// the client falls back to a local store when one is configured.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
	"github.com/Tiliavir/temps-vecu/internal/storage"
)

// ErrNoServer is returned when the server is unreachable and no fallback is configured.
var ErrNoServer = errors.New("server not reachable")

// Client is an HTTP client for the tv server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	fallback   storage.Store
	logger     *slog.Logger

	once     sync.Once
	detected bool
}

// Ensure Client implements storage.Store.
var _ storage.Store = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithFallback routes loads and saves to local when the server is not detected.
func WithFallback(local storage.Store) Option {
	return func(c *Client) { c.fallback = local }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a client for the server at baseURL (e.g. "http://localhost:3000").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available reports whether the server answered /api/ping. The first answer
// is cached for the lifetime of the client.
func (c *Client) Available(ctx context.Context) bool {
	c.once.Do(func() {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/ping", nil)
		if err != nil {
			return
		}
		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Debug("server not detected", "url", c.baseURL, "error", err)
			return
		}
		resp.Body.Close()
		c.detected = resp.StatusCode == http.StatusOK
	})
	return c.detected
}

// Load implements storage.Store.
func (c *Client) Load(ctx context.Context, user string) (model.Snapshot, error) {
	user = storage.UserOrDefault(user)
	if !c.Available(ctx) {
		if c.fallback != nil {
			return c.fallback.Load(ctx, user)
		}
		return model.Snapshot{}, ErrNoServer
	}

	endpoint := fmt.Sprintf("%s/api/load?user=%s", c.baseURL, url.QueryEscape(user))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	body, err := c.do(req)
	if err != nil {
		return model.Snapshot{}, err
	}
	var snap model.Snapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return model.Snapshot{}, fmt.Errorf("decoding load response: %w", err)
	}
	snap.Normalize()
	snap.Version = model.SnapshotVersion
	snap.User = user
	return snap, nil
}

// Save implements storage.Store. The payload is the full export document.
func (c *Client) Save(ctx context.Context, user string, snap model.Snapshot) error {
	user = storage.UserOrDefault(user)
	if !c.Available(ctx) {
		if c.fallback != nil {
			return c.fallback.Save(ctx, user, snap)
		}
		return ErrNoServer
	}

	payload := snap.Clone()
	payload.Version = model.SnapshotVersion
	payload.User = user
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/save", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.do(req)
	return err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server request failed: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
