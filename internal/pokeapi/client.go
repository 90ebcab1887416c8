// Package pokeapi fetches the collection and detail records from PokeAPI.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultGraphQLURL = "https://beta.pokeapi.co/graphql/v1beta"
	DefaultRESTURL    = "https://pokeapi.co/api/v2"
	DefaultLimit      = 300

	defaultTimeout = 15 * time.Second
)

var (
	ErrNotFound  = errors.New("pokemon not found")
	ErrEmptyName = errors.New("pokemon name or id is required")
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Cache stores raw response bodies between runs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, data []byte) error
}

type Client struct {
	http       *http.Client
	graphqlURL string
	restURL    string
	limit      int
	cache      Cache
	refresh    bool
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithGraphQLURL(url string) Option {
	return func(c *Client) { c.graphqlURL = url }
}

func WithRESTURL(url string) Option {
	return func(c *Client) { c.restURL = strings.TrimSuffix(url, "/") }
}

func WithLimit(n int) Option {
	return func(c *Client) { c.limit = n }
}

func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithRefresh makes the client skip cached responses. Fresh responses are
// still written to the cache.
func WithRefresh(refresh bool) Option {
	return func(c *Client) { c.refresh = refresh }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		http:       &http.Client{Timeout: defaultTimeout},
		graphqlURL: DefaultGraphQLURL,
		restURL:    DefaultRESTURL,
		limit:      DefaultLimit,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limit <= 0 {
		c.limit = DefaultLimit
	}
	return c
}

func (c *Client) cached(key string, v any) bool {
	if c.cache == nil || c.refresh {
		return false
	}
	data, ok := c.cache.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		c.log.Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	c.log.Debug("cache hit", zap.String("key", key))
	return true
}

func (c *Client) store(key string, v any) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.cache.Put(key, data); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *Client) do(req *http.Request, v any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	c.log.Debug("http request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: req.URL.String(), Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", req.URL, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, v)
}
