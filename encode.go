package folio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/etnz/folio/date"
	"github.com/pelletier/go-toml/v2"
	"github.com/shopspring/decimal"
)

// tomlFile mirrors the layout of the storage file:
//
//	[portfolio."<name>".asset."<ticker>".cost]
//	min = 1.0
//	[[portfolio."<name>".asset."<ticker>".op]]
//	quantity = 10
//	price = 100.0
//	date = 2025-01-31
type tomlFile struct {
	Portfolio map[string]tomlPortfolio `toml:"portfolio"`
}

type tomlPortfolio struct {
	Asset map[string]tomlAsset `toml:"asset"`
}

type tomlAsset struct {
	Cost *tomlCost `toml:"cost,omitempty"`
	// Op is never omitted so that an asset without transactions still has a table.
	Op []tomlOp `toml:"op"`
}

type tomlCost struct {
	Min *float64 `toml:"min,omitempty"`
	Max *float64 `toml:"max,omitempty"`
	Per *float64 `toml:"per,omitempty"`
}

type tomlOp struct {
	Quantity uint64         `toml:"quantity"`
	Price    float64        `toml:"price"`
	Date     toml.LocalDate `toml:"date"`
}

// EncodeSnapshot writes the whole snapshot as TOML.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	file := tomlFile{Portfolio: make(map[string]tomlPortfolio, s.Len())}
	for p := range s.Portfolios() {
		tp := tomlPortfolio{Asset: make(map[string]tomlAsset, p.Len())}
		for a := range p.Assets() {
			ta := tomlAsset{Op: make([]tomlOp, 0, a.Len())}
			if cost, ok := a.Cost(); ok {
				ta.Cost = &tomlCost{
					Min: encodeOptional(cost.Min),
					Max: encodeOptional(cost.Max),
					Per: encodeOptional(cost.Percentage),
				}
			}
			for _, tx := range a.Transactions() {
				ta.Op = append(ta.Op, tomlOp{
					Quantity: tx.Quantity(),
					Price:    tx.Price().InexactFloat64(),
					Date:     toml.LocalDate{Year: tx.Date().Year(), Month: int(tx.Date().Month()), Day: tx.Date().Day()},
				})
			}
			tp.Asset[a.Ticker()] = ta
		}
		file.Portfolio[p.Name()] = tp
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("could not encode snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot written by EncodeSnapshot.
//
// Content that EncodeSnapshot could not have produced from a valid snapshot
// (a zero quantity, a negative or non-finite price or bound) is rejected.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var file tomlFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, fmt.Errorf("could not decode snapshot: %w", err)
	}

	s := NewSnapshot()
	for name, tp := range file.Portfolio {
		p := newPortfolio(name)
		for ticker, ta := range tp.Asset {
			a := newAsset(ticker)
			if ta.Cost != nil {
				cost, err := decodeCost(ta.Cost)
				if err != nil {
					return nil, fmt.Errorf("invalid cost of %s/%s: %w", name, ticker, err)
				}
				a.cost = &cost
			}
			for i, op := range ta.Op {
				tx, err := decodeOp(op)
				if err != nil {
					return nil, fmt.Errorf("invalid op #%d of %s/%s: %w", i+1, name, ticker, err)
				}
				a.transactions = append(a.transactions, tx)
			}
			p.assets[ticker] = a
		}
		s.portfolios[name] = p
	}
	return s, nil
}

func decodeOp(op tomlOp) (Transaction, error) {
	if op.Quantity == 0 {
		return Transaction{}, errors.New("quantity must be positive")
	}
	price, err := decodeAmount("price", op.Price)
	if err != nil {
		return Transaction{}, err
	}
	day := date.New(op.Date.Year, time.Month(op.Date.Month), op.Date.Day)
	return NewTransaction(day, op.Quantity, price), nil
}

func decodeCost(tc *tomlCost) (c CostConstraint, err error) {
	if c.Min, err = decodeOptional("min", tc.Min); err != nil {
		return c, err
	}
	if c.Max, err = decodeOptional("max", tc.Max); err != nil {
		return c, err
	}
	if c.Percentage, err = decodeOptional("per", tc.Per); err != nil {
		return c, err
	}
	return c, nil
}

// decodeAmount accepts finite non-negative floats only.
func decodeAmount(name string, f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%s is not a finite number", name)
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("negative %s %v", name, f)
	}
	return decimal.NewFromFloat(f), nil
}

func encodeOptional(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func decodeOptional(name string, f *float64) (*decimal.Decimal, error) {
	if f == nil {
		return nil, nil
	}
	d, err := decodeAmount(name, *f)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
