package folio

import (
	"fmt"
	"strings"

	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// Side is the direction of a trade as typed by the user.
type Side string

// Buy is the only side the ledger records.
const Buy Side = "buy"

// ParseSide parses a trade direction. Only "buy" is accepted: selling is a
// known limitation of the ledger and is reported with ErrSellUnsupported.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return "", newError(ErrSellUnsupported, "", "", nil)
	default:
		return "", newError(ErrValidation, "", "", fmt.Errorf("unknown side %q, want %q", s, Buy))
	}
}

// Transaction is a single purchase contributing to an asset's cost basis.
//
// A Transaction is a value: it cannot be modified once created.
type Transaction struct {
	quantity uint64
	price    decimal.Decimal
	date     date.Date
}

// NewTransaction creates a purchase of quantity units at a unit price on a given day.
func NewTransaction(day date.Date, quantity uint64, price decimal.Decimal) Transaction {
	return Transaction{quantity: quantity, price: price, date: day}
}

// Quantity returns the number of units bought.
func (t Transaction) Quantity() uint64 { return t.quantity }

// Price returns the unit price paid.
func (t Transaction) Price() decimal.Decimal { return t.price }

// Date returns the day of the purchase.
func (t Transaction) Date() date.Date { return t.date }

// Cost returns quantity × price.
func (t Transaction) Cost() decimal.Decimal {
	return t.price.Mul(decimal.NewFromUint64(t.quantity))
}

func (t Transaction) Equal(o Transaction) bool {
	return t.quantity == o.quantity && t.price.Equal(o.price) && t.date == o.date
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %d @ %s", t.date, t.quantity, t.price)
}

// CostConstraint holds optional alerting thresholds of an asset.
// A nil field is an absent bound.
type CostConstraint struct {
	Min        *decimal.Decimal // Min is the price under which the asset is reported.
	Max        *decimal.Decimal // Max is the price above which the asset is reported.
	Percentage *decimal.Decimal // Percentage is the gain percentage to report when reached.
}

// IsZero reports whether no bound is set.
func (c CostConstraint) IsZero() bool {
	return c.Min == nil && c.Max == nil && c.Percentage == nil
}

func (c CostConstraint) Equal(o CostConstraint) bool {
	return equalOptional(c.Min, o.Min) && equalOptional(c.Max, o.Max) && equalOptional(c.Percentage, o.Percentage)
}

func equalOptional(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
