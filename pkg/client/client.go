// Package client is a typed HTTP client for the farm API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dalu/entities"
	"dalu/pkg/schema"
)

const DefaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string // e.g. http://localhost:8000/api/v1
	Timeout time.Duration
}

// Client sends JSON requests to one API base URL. A bearer token is read
// from the TokenStore before every request; a 401 response clears it.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenStore
	log    *zap.Logger

	Crops      *Crops
	Animals    *Animals
	Flowers    *Flowers
	Statistics *Statistics
}

type Option func(*Client)

func WithTokenStore(s TokenStore) Option { return func(c *Client) { c.tokens = s } }

func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.log = l } }

// WithHTTPClient replaces the underlying client; its Timeout is overwritten
// by Config.Timeout.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func New(cfg Config, opts ...Option) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", cfg.BaseURL)
	}
	c := &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		http:   &http.Client{},
		tokens: NewMemoryTokenStore(""),
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.http.Timeout = cfg.Timeout
	if c.http.Timeout <= 0 {
		c.http.Timeout = DefaultTimeout
	}
	c.Crops = &Crops{resource[entities.Crop, schema.CropCreate, schema.CropUpdate]{c, "/crops"}}
	c.Animals = &Animals{resource[entities.Animal, schema.AnimalCreate, schema.AnimalUpdate]{c, "/animals"}}
	c.Flowers = &Flowers{resource[entities.Flower, schema.FlowerCreate, schema.FlowerUpdate]{c, "/flowers"}}
	c.Statistics = &Statistics{c}
	return c, nil
}

func (c *Client) BaseURL() string { return c.base }

func (c *Client) Tokens() TokenStore { return c.tokens }

// Close drops idle keep-alive connections.
func (c *Client) Close() { c.http.CloseIdleConnections() }

// do sends body (if non-nil) as JSON and decodes a 2xx response into out
// (if non-nil). Every failure is an *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fail := func(status int, raw []byte, err error) error {
		return &Error{Method: method, Path: path, Status: status, Detail: parseDetail(raw), Body: raw, Err: err}
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fail(0, nil, fmt.Errorf("encode body: %w", err))
		}
		rd = bytes.NewReader(b)
	}
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fail(0, nil, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Token()
	if err != nil {
		c.log.Warn("token store unreadable", zap.Error(err))
	} else if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fail(0, nil, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)
	if err != nil {
		return fail(resp.StatusCode, nil, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(); err != nil {
			c.log.Warn("clear token", zap.Error(err))
		} else {
			c.log.Warn("unauthorized, stored token cleared", zap.String("path", path))
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fail(resp.StatusCode, raw, nil)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fail(resp.StatusCode, raw, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
