package folio

import (
	"context"

	"github.com/shopspring/decimal"
)

// QuoteProvider is a source of market data.
//
// Implementations report an unknown ticker from LastQuote with an error
// wrapping ErrTickerNotFound.
type QuoteProvider interface {
	// Exists reports whether the ticker is known to the provider.
	Exists(ctx context.Context, ticker string) (bool, error)
	// LastQuote returns the latest quote of the ticker.
	LastQuote(ctx context.Context, ticker string) (Quote, error)
	// Search looks for tickers matching a free text query.
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// Quote is the latest market price of a ticker.
type Quote struct {
	Symbol         string
	Close          decimal.Decimal // Close is the last traded price.
	Open           decimal.Decimal // Open is the day's opening price.
	Currency       string
	InstrumentType string
}

// DayChange returns the price change since the day opened.
func (q Quote) DayChange() decimal.Decimal { return q.Close.Sub(q.Open) }

// SearchResult is one match returned by QuoteProvider.Search.
type SearchResult struct {
	DisplayType string
	Symbol      string
	Exchange    string
	Description string
}
