package folio

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// fakeProvider serves quotes from memory and counts calls.
type fakeProvider struct {
	quotes map[string]Quote
	err    error // err is returned by every call when set.
	calls  int
}

func newFakeProvider(quotes ...Quote) *fakeProvider {
	p := &fakeProvider{quotes: make(map[string]Quote)}
	for _, q := range quotes {
		p.quotes[q.Symbol] = q
	}
	return p
}

func (p *fakeProvider) Exists(ctx context.Context, ticker string) (bool, error) {
	p.calls++
	if p.err != nil {
		return false, p.err
	}
	_, ok := p.quotes[ticker]
	return ok, nil
}

func (p *fakeProvider) LastQuote(ctx context.Context, ticker string) (Quote, error) {
	p.calls++
	if p.err != nil {
		return Quote{}, p.err
	}
	q, ok := p.quotes[ticker]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
	}
	return q, nil
}

func (p *fakeProvider) Search(ctx context.Context, query string) ([]SearchResult, error) {
	p.calls++
	return nil, p.err
}

// flakyStore is a FileStore whose Save can be made to fail.
type flakyStore struct {
	*FileStore
	fail bool
}

func (s *flakyStore) Save(snap *Snapshot) error {
	if s.fail {
		return newError(ErrPersistence, "", "", errors.New("disk full"))
	}
	return s.FileStore.Save(snap)
}

func quote(symbol string, price string, currency string) Quote {
	d := decimal.RequireFromString(price)
	return Quote{Symbol: symbol, Close: d, Open: d, Currency: currency, InstrumentType: "EQUITY"}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// newTestLedger returns a ledger stored in a temporary directory with a fixed today.
func newTestLedger(t *testing.T, quotes QuoteProvider) (*Ledger, *FileStore) {
	t.Helper()
	store := NewFileStore(t.TempDir())
	l, err := NewLedger(store, quotes)
	if err != nil {
		t.Fatalf("NewLedger() error = %v", err)
	}
	l.today = func() date.Date { return date.New(2025, 7, 14) }
	return l, store
}

// asset builds an asset holding transactions in the given order.
func asset(ticker string, txs ...Transaction) *Asset {
	a := newAsset(ticker)
	a.transactions = append(a.transactions, txs...)
	return a
}

func buy(quantity uint64, price string) Transaction {
	return NewTransaction(date.New(2025, 1, 1), quantity, dec(price))
}

// near compares percentages computed through float64.
func near(p, q Percent) bool {
	return math.Abs(float64(p-q)) < 0.0001
}
