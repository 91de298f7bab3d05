package eodhd

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/etnz/folio"
)

// searchItem matches the structure of a single item in the EODHD search API response.
type searchItem struct {
	Code     string `json:"Code"`
	Exchange string `json:"Exchange"`
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Country  string `json:"Country"`
	Currency string `json:"Currency"`
	ISIN     string `json:"ISIN"`
}

// Ticker returns the EODHD ticker: code and exchange separated by a dot.
func (s searchItem) Ticker() string { return s.Code + "." + s.Exchange }

func (c *Client) search(ctx context.Context, query string) ([]searchItem, error) {
	var results []searchItem
	if err := jwget(ctx, c.cached, c.addr("/api/search/"+url.PathEscape(query), nil), &results); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return results, nil
}

// Search searches for securities via EOD Historical Data API.
func (c *Client) Search(ctx context.Context, query string) ([]folio.SearchResult, error) {
	items, err := c.search(ctx, query)
	if err != nil {
		return nil, err
	}
	res := make([]folio.SearchResult, 0, len(items))
	for _, item := range items {
		res = append(res, folio.SearchResult{
			DisplayType: item.Type,
			Symbol:      item.Ticker(),
			Exchange:    item.Exchange,
			Description: item.Name,
		})
	}
	return res, nil
}

// lookup finds the search item of an exact ticker.
func (c *Client) lookup(ctx context.Context, ticker string) (searchItem, error) {
	code, _, _ := strings.Cut(ticker, ".")
	items, err := c.search(ctx, code)
	if err != nil {
		return searchItem{}, err
	}
	for _, item := range items {
		if strings.EqualFold(item.Ticker(), ticker) {
			return item, nil
		}
	}
	return searchItem{}, fmt.Errorf("no search result for %q", ticker)
}
