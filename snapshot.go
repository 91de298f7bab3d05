package folio

import (
	"iter"
	"maps"
	"slices"
)

// Asset is the record of one ticker inside a portfolio: an optional cost
// constraint and the purchases in the order they were recorded.
type Asset struct {
	ticker       string
	cost         *CostConstraint
	transactions []Transaction
}

func newAsset(ticker string) *Asset {
	return &Asset{ticker: ticker}
}

// Ticker returns the ticker symbol of the asset.
func (a *Asset) Ticker() string { return a.ticker }

// Cost returns the cost constraint of the asset and whether one was ever set.
func (a *Asset) Cost() (CostConstraint, bool) {
	if a.cost == nil {
		return CostConstraint{}, false
	}
	return *a.cost, true
}

// Len returns the number of recorded transactions.
func (a *Asset) Len() int { return len(a.transactions) }

// Quantity returns the total number of units bought.
func (a *Asset) Quantity() uint64 {
	var q uint64
	for _, tx := range a.transactions {
		q += tx.quantity
	}
	return q
}

// Transactions returns an iterator that yields each transaction in its recording order.
func (a *Asset) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range a.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

func (a *Asset) clone() *Asset {
	c := &Asset{ticker: a.ticker, transactions: slices.Clone(a.transactions)}
	if a.cost != nil {
		cost := *a.cost
		c.cost = &cost
	}
	return c
}

func (a *Asset) equal(b *Asset) bool {
	if a.ticker != b.ticker || (a.cost == nil) != (b.cost == nil) {
		return false
	}
	if a.cost != nil && !a.cost.Equal(*b.cost) {
		return false
	}
	return slices.EqualFunc(a.transactions, b.transactions, Transaction.Equal)
}

// Portfolio is a named collection of assets indexed by ticker.
type Portfolio struct {
	name   string
	assets map[string]*Asset
}

func newPortfolio(name string) *Portfolio {
	return &Portfolio{name: name, assets: make(map[string]*Asset)}
}

// Name returns the portfolio name.
func (p *Portfolio) Name() string { return p.name }

// Asset returns the asset recorded with this ticker, or nil if unknown.
func (p *Portfolio) Asset(ticker string) *Asset {
	return p.assets[ticker]
}

// Len returns the number of assets.
func (p *Portfolio) Len() int { return len(p.assets) }

// Assets iterates over assets in ticker order.
func (p *Portfolio) Assets() iter.Seq[*Asset] {
	return func(yield func(*Asset) bool) {
		tickers := slices.Sorted(maps.Keys(p.assets))
		for _, ticker := range tickers {
			if !yield(p.assets[ticker]) {
				return
			}
		}
	}
}

func (p *Portfolio) clone() *Portfolio {
	c := newPortfolio(p.name)
	for ticker, a := range p.assets {
		c.assets[ticker] = a.clone()
	}
	return c
}

func (p *Portfolio) equal(q *Portfolio) bool {
	return p.name == q.name && maps.EqualFunc(p.assets, q.assets, (*Asset).equal)
}

// Snapshot is the whole ledger state: portfolios indexed by name.
type Snapshot struct {
	portfolios map[string]*Portfolio
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{portfolios: make(map[string]*Portfolio)}
}

// Portfolio returns the portfolio with this name, or nil if unknown.
func (s *Snapshot) Portfolio(name string) *Portfolio {
	return s.portfolios[name]
}

// Len returns the number of portfolios.
func (s *Snapshot) Len() int { return len(s.portfolios) }

// Portfolios iterates over portfolios in name order.
func (s *Snapshot) Portfolios() iter.Seq[*Portfolio] {
	return func(yield func(*Portfolio) bool) {
		names := slices.Sorted(maps.Keys(s.portfolios))
		for _, name := range names {
			if !yield(s.portfolios[name]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	c := NewSnapshot()
	for name, p := range s.portfolios {
		c.portfolios[name] = p.clone()
	}
	return c
}

// Equal reports whether both snapshots hold the same portfolios, tickers,
// constraints and transaction sequences.
func (s *Snapshot) Equal(o *Snapshot) bool {
	return maps.EqualFunc(s.portfolios, o.portfolios, (*Portfolio).equal)
}
