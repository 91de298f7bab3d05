package renderer

import "github.com/shopspring/decimal"

func optional(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
