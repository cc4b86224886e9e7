// Package fetch implements outbound HTTP for lenscout. Every request goes
// through the response cache first; only misses reach the network, and
// each real request is paced by a fixed delay.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/lenscout/lenscout-cli/internal/core/domain"
	"github.com/lenscout/lenscout-cli/internal/core/ports/driven"
	"github.com/lenscout/lenscout-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Default client configuration.
const (
	DefaultTimeout = 30 * time.Second
)

// errMalformedBody is returned when an API response is not JSON.
var errMalformedBody = errors.New("malformed JSON body")

// ResponseCheck inspects a successful API body before it is cached.
// A non-nil error prevents caching and is returned to the caller.
type ResponseCheck func(body []byte) error

// Fetcher retrieves pages and API responses through a driven.ResponseCache.
type Fetcher struct {
	client      *resty.Client
	cache       driven.ResponseCache
	delay       time.Duration
	check       ResponseCheck
	credentials map[string]bool
}

type options struct {
	delay       time.Duration
	timeout     time.Duration
	userAgent   string
	contact     string
	check       ResponseCheck
	credentials []string
}

// Option configures a Fetcher.
type Option func(*options)

// WithDelay sets the pause before every network request. Zero disables pacing.
func WithDelay(d time.Duration) Option {
	return func(o *options) { o.delay = d }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithContact sets the From header.
func WithContact(contact string) Option {
	return func(o *options) { o.contact = contact }
}

// WithAPICheck installs a check run on API bodies before caching.
func WithAPICheck(check ResponseCheck) Option {
	return func(o *options) { o.check = check }
}

// WithCredentialParams names query parameters excluded from API cache keys.
func WithCredentialParams(names ...string) Option {
	return func(o *options) { o.credentials = names }
}

// New creates a Fetcher backed by cache.
func New(cache driven.ResponseCache, opts ...Option) *Fetcher {
	o := options{
		delay:       domain.DefaultFetchDelay,
		timeout:     DefaultTimeout,
		userAgent:   domain.DefaultUserAgent,
		credentials: []string{"api_key"},
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := resty.New().
		SetTimeout(o.timeout).
		SetHeader("User-Agent", o.userAgent)
	if o.contact != "" {
		client.SetHeader("From", o.contact)
	}

	f := &Fetcher{
		client:      client,
		cache:       cache,
		delay:       o.delay,
		check:       o.check,
		credentials: make(map[string]bool, len(o.credentials)),
	}
	for _, name := range o.credentials {
		f.credentials[name] = true
	}

	return f
}

// SetTransport replaces the HTTP transport, mainly for tests.
func (f *Fetcher) SetTransport(rt http.RoundTripper) {
	f.client.SetTransport(rt)
}

// FetchPage returns the raw HTML of pageURL.
func (f *Fetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	raw, err := f.cache.GetOrFetch(ctx, pageURL, func(ctx context.Context) (json.RawMessage, error) {
		body, err := f.get(ctx, pageURL, nil)
		if err != nil {
			return nil, err
		}
		return encodeString(string(body))
	})
	if err != nil {
		return "", err
	}

	var page string
	if err := json.Unmarshal(raw, &page); err != nil {
		return "", fmt.Errorf("decoding cached page %s: %w", pageURL, err)
	}
	return page, nil
}

// FetchAPI returns the JSON body for endpoint with params.
func (f *Fetcher) FetchAPI(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	key := f.CacheKey(endpoint, params)

	return f.cache.GetOrFetch(ctx, key, func(ctx context.Context) (json.RawMessage, error) {
		body, err := f.get(ctx, endpoint, params)
		if err != nil {
			return nil, err
		}
		if !json.Valid(body) {
			return nil, &domain.FetchError{URL: endpoint, Err: errMalformedBody}
		}
		if f.check != nil {
			if err := f.check(body); err != nil {
				return nil, err
			}
		}

		var buf bytes.Buffer
		if err := json.Compact(&buf, body); err != nil {
			return nil, &domain.FetchError{URL: endpoint, Err: err}
		}
		return buf.Bytes(), nil
	})
}

// CacheKey returns the request identity for an API call. Parameters are
// encoded in sorted order and credential parameters are left out.
func (f *Fetcher) CacheKey(endpoint string, params url.Values) string {
	keyParams := make(url.Values, len(params))
	for name, values := range params {
		if f.credentials[name] {
			continue
		}
		keyParams[name] = values
	}

	encoded := keyParams.Encode()
	if encoded == "" {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + encoded
}

func (f *Fetcher) get(ctx context.Context, target string, params url.Values) ([]byte, error) {
	if err := f.pause(ctx); err != nil {
		return nil, err
	}

	req := f.client.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}

	logger.Debug("fetching", "url", target)
	resp, err := req.Get(target)
	if err != nil {
		return nil, &domain.FetchError{URL: target, Err: err}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &domain.FetchError{URL: target, StatusCode: resp.StatusCode()}
	}

	return resp.Body(), nil
}

// pause blocks for one full delay before a network request. Each call
// gets a limiter whose only token is already spent, so time passed in a
// slow response or a run of cache hits never shortens the wait.
func (f *Fetcher) pause(ctx context.Context) error {
	if f.delay <= 0 {
		return nil
	}
	limiter := rate.NewLimiter(rate.Every(f.delay), 1)
	limiter.Allow()
	return limiter.Wait(ctx)
}

// encodeString JSON-encodes s without escaping HTML characters.
func encodeString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
