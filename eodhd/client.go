// Package eodhd implements folio.QuoteProvider with the EOD Historical Data API.
//
// Search responses are cached on disk for the day, quotes are always fetched.
package eodhd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/shopspring/decimal"
)

// Client fetches real-time quotes and searches tickers on EODHD.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cached  *http.Client
}

// New returns a client configured from cfg.HTTP and cfg.EODHD, caching
// search responses in the system temporary directory.
func New(cfg *config.Config) *Client {
	return NewClient(cfg.EODHD.APIKey, cfg.EODHD.URL, os.TempDir(), &http.Client{Timeout: cfg.HTTP.Timeout})
}

// NewClient returns a client for the API at baseURL, caching search
// responses in cacheDir.
func NewClient(apiKey, baseURL, cacheDir string, base *http.Client) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    base,
		cached:  newDailyCachingClient(base, cacheDir),
	}
}

func (c *Client) addr(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_token", c.apiKey)
	query.Set("fmt", "json")
	return c.baseURL + path + "?" + query.Encode()
}

// LastQuote returns the real-time (delayed) quote of a ticker like "AAPL.US".
func (c *Client) LastQuote(ctx context.Context, ticker string) (folio.Quote, error) {
	// https://eodhd.com/api/real-time/AAPL.US?api_token=demo&fmt=json
	// {"code":"AAPL.US","timestamp":1752264000,"gmtoffset":0,"open":210.565,"high":212.13,
	//  "low":209.86,"close":211.16,"volume":39765812,"previousClose":212.41,"change":-1.25}
	// unknown tickers have "NA" in place of numbers.
	var content struct {
		Code  string `json:"code"`
		Open  any    `json:"open"`
		Close any    `json:"close"`
	}
	err := jwget(ctx, c.http, c.addr("/api/real-time/"+url.PathEscape(ticker), nil), &content)
	if errors.Is(err, errNotFound) {
		return folio.Quote{}, fmt.Errorf("quote %q: %w", ticker, folio.ErrTickerNotFound)
	}
	if err != nil {
		return folio.Quote{}, fmt.Errorf("quote %q: %w", ticker, err)
	}
	cl, ok := content.Close.(float64)
	if !ok {
		return folio.Quote{}, fmt.Errorf("quote %q: %w", ticker, folio.ErrTickerNotFound)
	}
	op, ok := content.Open.(float64)
	if !ok {
		op = cl
	}

	q := folio.Quote{
		Symbol: ticker,
		Close:  decimal.NewFromFloat(cl),
		Open:   decimal.NewFromFloat(op),
	}
	// the real-time endpoint has no currency, the search has.
	if info, err := c.lookup(ctx, ticker); err == nil {
		q.Currency = info.Currency
		q.InstrumentType = info.Type
	}
	return q, nil
}

// Exists reports whether EODHD has a quote for the ticker.
func (c *Client) Exists(ctx context.Context, ticker string) (bool, error) {
	_, err := c.LastQuote(ctx, ticker)
	if errors.Is(err, folio.ErrTickerNotFound) {
		return false, nil
	}
	return err == nil, err
}
