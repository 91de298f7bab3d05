package folio

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/etnz/folio/date"
	"github.com/shopspring/decimal"
)

// parseQuantity parses a strictly positive integer.
func parseQuantity(s string) (uint64, error) {
	q, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity %q is not a positive integer", s)
	}
	if q == 0 {
		return 0, errors.New("quantity must be positive")
	}
	if q > math.MaxInt64 {
		return 0, fmt.Errorf("quantity %q is too large", s)
	}
	return q, nil
}

// parseAmount parses a non-negative real number.
//
// Amounts are stored as TOML floats: the value must read back identical
// from its float64 form.
func parseAmount(name, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q is not a number", name, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s %q must not be negative", name, s)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || !decimal.NewFromFloat(f).Equal(d) {
		return decimal.Zero, fmt.Errorf("%s %q has too many digits", name, s)
	}
	return d, nil
}

// parseOptionalAmount is like parseAmount but an empty string is an absent value.
func parseOptionalAmount(name, s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseAmount(name, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// parseCost parses the three optional bounds of a cost constraint.
func parseCost(low, high, percentage string) (CostConstraint, error) {
	var c CostConstraint
	var err error
	if c.Min, err = parseOptionalAmount("min", low); err != nil {
		return c, err
	}
	if c.Max, err = parseOptionalAmount("max", high); err != nil {
		return c, err
	}
	if c.Percentage, err = parseOptionalAmount("percentage", percentage); err != nil {
		return c, err
	}
	return c, nil
}

// parseDay parses a D/M/YYYY date. An empty string is today.
func parseDay(s string, today func() date.Date) (date.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return today(), nil
	}
	return date.Parse(s)
}
