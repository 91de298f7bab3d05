package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AlertKind tells which bound of a cost constraint was crossed.
type AlertKind int

const (
	BelowMin AlertKind = iota
	AboveMax
	TargetReached
)

func (k AlertKind) String() string {
	switch k {
	case BelowMin:
		return "below min"
	case AboveMax:
		return "above max"
	case TargetReached:
		return "target reached"
	default:
		return "unknown"
	}
}

// Alert reports that a price or a gain crossed a bound.
type Alert struct {
	Kind  AlertKind
	Bound decimal.Decimal
}

func (a Alert) String() string {
	if a.Kind == TargetReached {
		return fmt.Sprintf("%s (%s%%)", a.Kind, a.Bound)
	}
	return fmt.Sprintf("%s (%s)", a.Kind, a.Bound)
}

// Alerts checks the price and the gain percentage against the bounds.
// It only reports, nothing is enforced.
func (c CostConstraint) Alerts(price decimal.Decimal, pct Percent) []Alert {
	var alerts []Alert
	if c.Min != nil && price.LessThan(*c.Min) {
		alerts = append(alerts, Alert{Kind: BelowMin, Bound: *c.Min})
	}
	if c.Max != nil && price.GreaterThan(*c.Max) {
		alerts = append(alerts, Alert{Kind: AboveMax, Bound: *c.Max})
	}
	if c.Percentage != nil && pct.Reached(*c.Percentage) {
		alerts = append(alerts, Alert{Kind: TargetReached, Bound: *c.Percentage})
	}
	return alerts
}
