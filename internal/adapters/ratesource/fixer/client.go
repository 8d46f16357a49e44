// Package fixer fetches the latest exchange rates from a fixer.io compatible endpoint.
package fixer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/newswire_macros/internal/apperrors"
	"github.com/SscSPs/newswire_macros/internal/core/domain"
	"github.com/SscSPs/newswire_macros/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// Client implements providers.ExchangeRateProvider over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	symbols    []string
	now        func() time.Time
}

var _ providers.ExchangeRateProvider = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (whose timeout is the one passed to NewClient).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithClock replaces time.Now, used for FetchedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient creates a Client for baseURL (e.g. http://data.fixer.io/api/latest).
func NewClient(baseURL, apiKey string, symbols []string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		apiKey:     apiKey,
		symbols:    symbols,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetName identifies the provider in logs.
func (c *Client) GetName() string {
	return "fixer"
}

type latestResponse struct {
	Success   *bool              `json:"success"`
	Base      string             `json:"base"`
	Timestamp int64              `json:"timestamp"`
	Rates     map[string]float64 `json:"rates"`
	Error     *struct {
		Code int    `json:"code"`
		Type string `json:"type"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchRates performs a single request. Every failure wraps apperrors.ErrRateLookup.
func (c *Client) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	reqURL, err := c.requestURL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building rate request: %v", apperrors.ErrRateLookup, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error carries the full URL including the access key, keep only the cause
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("%w: rate request failed: %v", apperrors.ErrRateLookup, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: rate service responded with status %d", apperrors.ErrRateLookup, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decoding rate response: %v", apperrors.ErrRateLookup, err)
	}

	if body.Success == nil || !*body.Success {
		msg := "Failed to retrieve currency conversion rates"
		if body.Error != nil && body.Error.Info != "" {
			msg = fmt.Sprintf("%s (%s)", msg, body.Error.Info)
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrRateLookup, msg)
	}

	rates := make(map[string]decimal.Decimal, len(body.Rates))
	for code, r := range body.Rates {
		rates[strings.ToUpper(code)] = decimal.NewFromFloat(r)
	}

	return &domain.RateTable{
		Base:      body.Base,
		Rates:     rates,
		FetchedAt: c.now(),
	}, nil
}

func (c *Client) requestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid rate service URL: %v", apperrors.ErrRateLookup, err)
	}
	q := u.Query()
	q.Set("access_key", c.apiKey)
	q.Set("symbols", strings.Join(c.symbols, ","))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
