package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/ytget/recipe-browser/internal/model"
)

// Defaults
const (
	DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"
	DefaultTimeout = 10 * time.Second
)

// Endpoint and query parameters
const (
	searchPath       = "/search.php"
	paramKeyword     = "s"
	paramFirstLetter = "f"
)

// Searcher defines the TheMealDB operations used by the browser.
type Searcher interface {
	SearchByKeyword(ctx context.Context, query string) ([]model.Recipe, error)
	SearchByFirstLetter(ctx context.Context, letter rune) []model.Recipe
	FetchAll(ctx context.Context, progress ProgressFunc) ([]model.Recipe, error)
}

// Client provides access to the TheMealDB search API.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

var _ Searcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the per-request timeout. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger used for request and sweep diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a TheMealDB client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base url must start with http:// or https://: %s", baseURL)
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// SearchByKeyword searches recipes whose name matches query. No matches is
// not an error. Failures return an empty slice and a *Error; cancellation of
// ctx returns ctx.Err() unwrapped.
func (c *Client) SearchByKeyword(ctx context.Context, query string) ([]model.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Recipe{}, &Error{Kind: KindRequest, Op: "search", Err: ErrEmptyQuery}
	}

	recipes, err := c.search(ctx, "search", paramKeyword, query)
	if err != nil {
		c.logger.Warn("keyword search failed",
			zap.String("query", query),
			zap.String("kind", KindOf(err).String()),
			zap.Error(err))
		return []model.Recipe{}, err
	}
	return recipes, nil
}

// SearchByFirstLetter lists recipes starting with letter. Every failure is
// logged and yields an empty slice so batch callers are never interrupted.
func (c *Client) SearchByFirstLetter(ctx context.Context, letter rune) []model.Recipe {
	if !unicode.IsLetter(letter) {
		c.logger.Warn("first-letter search skipped", zap.String("letter", string(letter)))
		return []model.Recipe{}
	}
	letter = unicode.ToLower(letter)

	recipes, err := c.search(ctx, "letter", paramFirstLetter, string(letter))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.logger.Debug("first-letter search cancelled", zap.String("letter", string(letter)))
		} else {
			c.logger.Warn("first-letter search failed",
				zap.String("letter", string(letter)),
				zap.String("kind", KindOf(err).String()),
				zap.Error(err))
		}
		return []model.Recipe{}
	}
	return recipes
}

// search issues one GET against search.php and normalizes the matches.
func (c *Client) search(ctx context.Context, op, param, value string) ([]model.Recipe, error) {
	endpoint, err := url.Parse(c.baseURL + searchPath)
	if err != nil {
		return nil, &Error{Kind: KindRequest, Op: op, Err: fmt.Errorf("parse url: %w", err)}
	}
	params := url.Values{}
	params.Set(param, value)
	endpoint.RawQuery = params.Encode()

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindRequest, Op: op, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: classifyTransport(err), Op: op, Err: fmt.Errorf("execute request (latency=%v): %w", latency, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{Kind: KindRequest, Op: op, Err: &StatusError{StatusCode: resp.StatusCode}}
	}

	var payload searchResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		return nil, &Error{Kind: classifyBody(err), Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	// The body must hold exactly one JSON document
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		if errors.Is(ctx.Err(), context.Canceled) {
			return nil, ctx.Err()
		}
		if err == nil {
			return nil, &Error{Kind: KindRequest, Op: op, Err: errors.New("decode response: unexpected data after JSON document")}
		}
		return nil, &Error{Kind: classifyBody(err), Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	recipes, err := normalizeMeals(payload.Meals)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Op: op, Err: fmt.Errorf("normalize response: %w", err)}
	}

	c.logger.Debug("search completed",
		zap.String("op", op),
		zap.String(param, value),
		zap.Int("results", len(recipes)),
		zap.Duration("latency", latency))
	return recipes, nil
}
