package folio

import (
	"context"

	"github.com/shopspring/decimal"
)

// Gain is the result of valuing purchases against a price.
type Gain struct {
	Gain     decimal.Decimal // Gain is the current value minus the invested amount.
	Invested decimal.Decimal // Invested is the total amount paid.
}

// Add returns the sum of both gains.
func (g Gain) Add(h Gain) Gain {
	return Gain{Gain: g.Gain.Add(h.Gain), Invested: g.Invested.Add(h.Invested)}
}

// Value returns the current value: invested plus gain.
func (g Gain) Value() decimal.Decimal { return g.Invested.Add(g.Gain) }

// Percentage returns the gain relative to the invested amount.
func (g Gain) Percentage() Percent { return Percentage(g.Gain, g.Invested) }

// AssetGain values every transaction of the asset at the quote's close price.
//
//	gain     = Σ quantity × (close − price)
//	invested = Σ quantity × price
func AssetGain(a *Asset, quote Quote) Gain {
	var g Gain
	for _, tx := range a.Transactions() {
		q := decimal.NewFromUint64(tx.Quantity())
		g.Gain = g.Gain.Add(q.Mul(quote.Close.Sub(tx.Price())))
		g.Invested = g.Invested.Add(q.Mul(tx.Price()))
	}
	return g
}

// Percentage returns gain/invested in percent, or 0 if nothing was invested.
func Percentage(gain, invested decimal.Decimal) Percent {
	if invested.IsZero() {
		return 0
	}
	return Percent(gain.Div(invested).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Line is the valuation of a single asset.
type Line struct {
	Ticker   string
	Quantity uint64
	Quote    Quote
	Gain     Gain
	Alerts   []Alert
}

// Valuation is the valuation of a whole portfolio.
type Valuation struct {
	Portfolio string
	Lines     []Line // Lines are sorted by ticker.
	Total     Gain
}

// Percentage returns the total gain percentage of the portfolio.
func (v *Valuation) Percentage() Percent { return v.Total.Percentage() }

// Currency returns the currency shared by all the quotes, or "" if they differ.
func (v *Valuation) Currency() string {
	cur := ""
	for i, l := range v.Lines {
		if i == 0 {
			cur = l.Quote.Currency
			continue
		}
		if l.Quote.Currency != cur {
			return ""
		}
	}
	return cur
}

// PortfolioGain values each asset of the portfolio that holds transactions
// using the provider's last quote, and sums them up.
//
// It returns ErrEmptyPortfolio if no asset holds transactions, and
// ErrProvider if any quote cannot be retrieved.
func PortfolioGain(ctx context.Context, p *Portfolio, provider QuoteProvider) (*Valuation, error) {
	v := &Valuation{Portfolio: p.Name()}
	for a := range p.Assets() {
		if a.Len() == 0 {
			continue
		}
		quote, err := provider.LastQuote(ctx, a.Ticker())
		if err != nil {
			return nil, newError(ErrProvider, p.Name(), a.Ticker(), err)
		}
		g := AssetGain(a, quote)
		line := Line{
			Ticker:   a.Ticker(),
			Quantity: a.Quantity(),
			Quote:    quote,
			Gain:     g,
		}
		if cost, ok := a.Cost(); ok {
			line.Alerts = cost.Alerts(quote.Close, g.Percentage())
		}
		v.Lines = append(v.Lines, line)
		v.Total = v.Total.Add(g)
	}
	if len(v.Lines) == 0 {
		return nil, newError(ErrEmptyPortfolio, p.Name(), "", nil)
	}
	return v, nil
}
