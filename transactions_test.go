package folio

import (
	"errors"
	"testing"
)

func TestParseSide(t *testing.T) {
	if s, err := ParseSide("BUY"); err != nil || s != Buy {
		t.Errorf("ParseSide(BUY) = %q, %v, want %q", s, err, Buy)
	}
	if _, err := ParseSide("sell"); !errors.Is(err, ErrSellUnsupported) {
		t.Errorf("ParseSide(sell) error = %v, want %v", err, ErrSellUnsupported)
	}
	if _, err := ParseSide("hold"); !errors.Is(err, ErrValidation) || errors.Is(err, ErrSellUnsupported) {
		t.Errorf("ParseSide(hold) error = %v, want %v", err, ErrValidation)
	}
}

func TestTransaction_Cost(t *testing.T) {
	if got := buy(3, "1.25").Cost(); !got.Equal(dec("3.75")) {
		t.Errorf("Cost() = %v, want 3.75", got)
	}
}

func TestCostConstraint_Alerts(t *testing.T) {
	c := CostConstraint{Min: decp("90"), Max: decp("120"), Percentage: decp("15")}
	tests := []struct {
		name  string
		price string
		pct   Percent
		want  []AlertKind
	}{
		{"inside", "100", 5, nil},
		{"below", "80", -20, []AlertKind{BelowMin}},
		{"above and reached", "130", 30, []AlertKind{AboveMax, TargetReached}},
		{"reached exactly", "115", 15, []AlertKind{TargetReached}},
		{"on the bounds", "90", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Alerts(dec(tt.price), tt.pct)
			if len(got) != len(tt.want) {
				t.Fatalf("Alerts() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].Kind != tt.want[i] {
					t.Errorf("Alerts()[%d] = %v, want %v", i, got[i].Kind, tt.want[i])
				}
			}
		})
	}
	if got := (CostConstraint{}).Alerts(dec("1"), 100); len(got) != 0 {
		t.Errorf("empty constraint Alerts() = %v, want none", got)
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(dec("1234.5"), "USD"), "$1,234.50"},
		{M(dec("-3.456"), ""), "-3.46"},
		{M(dec("0"), "USD"), "$0.00"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%v String() = %q, want %q", tt.m.Value(), got, tt.want)
		}
	}
	if got := M(dec("10"), "USD").SignedString(); got != "+$10.00" {
		t.Errorf("SignedString() = %q, want +$10.00", got)
	}
	if got := M(dec("0"), "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		p      Percent
		signed string
	}{
		{10, "+10.00%"},
		{-5.5, "-5.50%"},
		{0, "-"},
		{-0.001, "-"},
		{0.004, "-"},
		{0.006, "+0.01%"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.signed {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.signed)
		}
	}
	if got, want := Percent(12.5).String(), "12.50%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if !Percent(9.999).Reached(dec("10")) {
		t.Error("9.999% prints as 10.00% and should reach a 10% target")
	}
	if Percent(9.99).Reached(dec("10")) {
		t.Error("9.99% should not reach a 10% target")
	}
}
