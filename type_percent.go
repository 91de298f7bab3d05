package folio

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Percent is a gain ratio expressed in percent: 12.5 means a 12.5% gain.
type Percent float64

// Reached reports whether the percentage is at or above target, compared
// at the two decimals it is printed with.
func (p Percent) Reached(target decimal.Decimal) bool {
	return decimal.NewFromFloat(float64(p)).Round(2).GreaterThanOrEqual(target.Round(2))
}

func (p Percent) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64) + "%"
}

// SignedString prints the percentage with its sign, or "-" when it rounds to zero.
func (p Percent) SignedString() string {
	s := p.String()
	switch {
	case s == "0.00%" || s == "-0.00%":
		return "-"
	case p > 0:
		return "+" + s
	}
	return s
}
