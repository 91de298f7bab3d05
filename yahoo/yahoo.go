// Package yahoo implements folio.QuoteProvider on top of the public Yahoo
// Finance chart and search endpoints.
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) pft"

// Client fetches quotes and searches tickers on Yahoo Finance.
type Client struct {
	client    *resty.Client
	chartURL  string
	searchURL string
}

// New returns a client configured from cfg.HTTP and cfg.Yahoo.
func New(cfg *config.Config) *Client {
	client := resty.New().
		SetDebug(cfg.HTTP.Debug).
		SetTimeout(cfg.HTTP.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")
	return &Client{client: client, chartURL: cfg.Yahoo.ChartURL, searchURL: cfg.Yahoo.SearchURL}
}

// getJSON fetches and decodes a JSON document. A 404 is reported as
// folio.ErrTickerNotFound.
func (c *Client) getJSON(ctx context.Context, req *resty.Request, url string) (any, error) {
	slog.Debug("start yahoo request", slog.String("url", url))
	resp, err := req.SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("error while dialing yahoo: %w", err)
	}
	slog.Debug("yahoo request complete", slog.String("url", resp.Request.URL), slog.Int("status", resp.StatusCode()))

	if resp.StatusCode() == http.StatusNotFound {
		return nil, folio.ErrTickerNotFound
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo replied %s", resp.Status())
	}
	var doc any
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("can't unmarshall yahoo response: %w", err)
	}
	return doc, nil
}

// LastQuote returns the latest daily quote of the ticker.
func (c *Client) LastQuote(ctx context.Context, ticker string) (folio.Quote, error) {
	req := c.client.R().
		SetPathParam("symbol", ticker).
		SetQueryParams(map[string]string{"interval": "1d", "range": "1d"})
	doc, err := c.getJSON(ctx, req, c.chartURL+"/v8/finance/chart/{symbol}")
	if err != nil {
		return folio.Quote{}, fmt.Errorf("quote %q: %w", ticker, err)
	}

	if e, err := jsonpath.Get("$.chart.error", doc); err == nil && e != nil {
		return folio.Quote{}, fmt.Errorf("quote %q: %w: %v", ticker, folio.ErrTickerNotFound, e)
	}
	meta, err := jsonpath.Get("$.chart.result[0].meta", doc)
	if err != nil {
		return folio.Quote{}, fmt.Errorf("quote %q: %w", ticker, folio.ErrTickerNotFound)
	}
	m, ok := meta.(map[string]any)
	if !ok {
		return folio.Quote{}, fmt.Errorf("quote %q: unexpected meta %v", ticker, meta)
	}

	q := folio.Quote{
		Symbol:         stringOr(m["symbol"], ticker),
		Currency:       stringOr(m["currency"], ""),
		InstrumentType: stringOr(m["instrumentType"], ""),
	}
	closes, _ := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", doc)
	opens, _ := jsonpath.Get("$.chart.result[0].indicators.quote[0].open", doc)

	cl, ok := lastNumber(closes)
	if !ok {
		// no trade yet today
		cl, ok = m["regularMarketPrice"].(float64)
		if !ok {
			return folio.Quote{}, fmt.Errorf("quote %q: no price in response", ticker)
		}
	}
	op, ok := lastNumber(opens)
	if !ok {
		op = cl
	}
	q.Close = decimal.NewFromFloat(cl)
	q.Open = decimal.NewFromFloat(op)
	return q, nil
}

// Exists reports whether yahoo knows the ticker.
func (c *Client) Exists(ctx context.Context, ticker string) (bool, error) {
	_, err := c.LastQuote(ctx, ticker)
	if errors.Is(err, folio.ErrTickerNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Search returns the quotes matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]folio.SearchResult, error) {
	req := c.client.R().SetQueryParams(map[string]string{
		"q":           query,
		"quotesCount": "10",
		"newsCount":   "0",
	})
	doc, err := c.getJSON(ctx, req, c.searchURL+"/v1/finance/search")
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	quotes, err := jsonpath.Get("$.quotes", doc)
	if err != nil {
		return nil, nil // no quotes section, no match
	}
	list, _ := quotes.([]any)

	res := make([]folio.SearchResult, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		symbol := stringOr(m["symbol"], "")
		if symbol == "" {
			continue
		}
		res = append(res, folio.SearchResult{
			DisplayType: stringOr(m["typeDisp"], stringOr(m["quoteType"], "")),
			Symbol:      symbol,
			Exchange:    stringOr(m["exchDisp"], stringOr(m["exchange"], "")),
			Description: stringOr(m["longname"], stringOr(m["shortname"], "")),
		})
	}
	return res, nil
}

func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// lastNumber returns the last non null number of a JSON array.
func lastNumber(v any) (float64, bool) {
	list, _ := v.([]any)
	for i := len(list) - 1; i >= 0; i-- {
		if f, ok := list[i].(float64); ok {
			return f, true
		}
	}
	return 0, false
}
