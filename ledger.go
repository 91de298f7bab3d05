package folio

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"sync"

	"github.com/etnz/folio/date"
)

// Ledger is the authoritative in-memory state of all portfolios.
//
// Every successful mutation is written back through the Persister before
// it returns. A mutation that cannot be saved is reverted.
type Ledger struct {
	mu     sync.Mutex
	snap   *Snapshot
	store  Persister
	quotes QuoteProvider
	today  func() date.Date
}

// NewLedger loads the ledger state from store. quotes is used to check
// that a ticker exists before it is first added.
func NewLedger(store Persister, quotes QuoteProvider) (*Ledger, error) {
	snap, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Ledger{
		snap:   snap,
		store:  store,
		quotes: quotes,
		today:  date.Today,
	}, nil
}

// Portfolios returns the sorted names of all portfolios.
func (l *Ledger) Portfolios() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Sorted(maps.Keys(l.snap.portfolios))
}

// Portfolio returns a copy of the named portfolio.
func (l *Ledger) Portfolio(name string) (*Portfolio, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p := l.snap.Portfolio(name)
	if p == nil {
		return nil, newError(ErrPortfolioNotFound, name, "", nil)
	}
	return p.clone(), nil
}

// Snapshot returns a copy of the whole ledger state.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snap.Clone()
}

// AddAsset adds ticker to the portfolio, creating the portfolio if needed.
// Adding an asset that is already there does nothing.
func (l *Ledger) AddAsset(ctx context.Context, portfolio, ticker string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, undo, err := l.resolveAsset(ctx, portfolio, ticker)
	if err != nil || undo == nil {
		return err
	}
	return l.commit(undo, portfolio, ticker)
}

// SetCostConstraint sets the alerting bounds of an asset, creating the
// portfolio and the asset if needed. Empty strings are absent bounds.
//
// The previous constraint, if any, is entirely replaced.
func (l *Ledger) SetCostConstraint(ctx context.Context, portfolio, ticker, low, high, percentage string) error {
	cost, err := parseCost(low, high, percentage)
	if err != nil {
		return newError(ErrValidation, portfolio, ticker, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	asset, undo, err := l.resolveAsset(ctx, portfolio, ticker)
	if err != nil {
		return err
	}
	prev := asset.cost
	asset.cost = &cost
	return l.commit(func() {
		asset.cost = prev
		if undo != nil {
			undo()
		}
	}, portfolio, ticker)
}

// RecordTransaction appends a purchase to an existing asset.
// An empty day is today, otherwise it must be formatted as D/M/YYYY.
func (l *Ledger) RecordTransaction(portfolio, ticker, quantity, price, day string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	p := l.snap.Portfolio(portfolio)
	if p == nil {
		return newError(ErrPortfolioNotFound, portfolio, ticker, nil)
	}
	asset := p.Asset(ticker)
	if asset == nil {
		return newError(ErrAssetNotFound, portfolio, ticker, nil)
	}

	q, err := parseQuantity(quantity)
	if err != nil {
		return newError(ErrValidation, portfolio, ticker, err)
	}
	if asset.Quantity() > math.MaxInt64-q {
		return newError(ErrValidation, portfolio, ticker, fmt.Errorf("total quantity of %s would exceed %d", ticker, uint64(math.MaxInt64)))
	}
	pr, err := parseAmount("price", price)
	if err != nil {
		return newError(ErrValidation, portfolio, ticker, err)
	}
	on, err := parseDay(day, l.today)
	if err != nil {
		return newError(ErrDateFormat, portfolio, ticker, err)
	}

	n := len(asset.transactions)
	asset.transactions = append(asset.transactions, NewTransaction(on, q, pr))
	return l.commit(func() { asset.transactions = asset.transactions[:n] }, portfolio, ticker)
}

// resolveAsset returns the asset, creating it and its portfolio when they
// don't exist yet. A new ticker must be known to the quote provider.
//
// undo reverts the creation, it is nil if nothing was created.
func (l *Ledger) resolveAsset(ctx context.Context, portfolio, ticker string) (asset *Asset, undo func(), err error) {
	p := l.snap.Portfolio(portfolio)
	if p != nil {
		if a := p.Asset(ticker); a != nil {
			return a, nil, nil
		}
	}

	ok, err := l.quotes.Exists(ctx, ticker)
	if err != nil {
		return nil, nil, newError(ErrProvider, portfolio, ticker, err)
	}
	if !ok {
		return nil, nil, newError(ErrTickerNotFound, portfolio, ticker, nil)
	}

	if p == nil {
		p = newPortfolio(portfolio)
		l.snap.portfolios[portfolio] = p
		undo = func() { delete(l.snap.portfolios, portfolio) }
	} else {
		undo = func() { delete(p.assets, ticker) }
	}
	asset = newAsset(ticker)
	p.assets[ticker] = asset
	return asset, undo, nil
}

// commit saves the snapshot, or calls undo if it can't.
func (l *Ledger) commit(undo func(), portfolio, ticker string) error {
	err := l.store.Save(l.snap)
	if err == nil {
		return nil
	}
	undo()
	var e *Error
	if errors.As(err, &e) {
		e.Portfolio, e.Ticker = portfolio, ticker
		return e
	}
	return newError(ErrPersistence, portfolio, ticker, err)
}
