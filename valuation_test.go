package folio

import (
	"context"
	"errors"
	"testing"
)

func TestAssetGain(t *testing.T) {
	a := asset("AI.PA", buy(10, "100"))
	got := AssetGain(a, quote("AI.PA", "110", "EUR"))

	if !got.Gain.Equal(dec("100")) {
		t.Errorf("Gain = %v, want 100", got.Gain)
	}
	if !got.Invested.Equal(dec("1000")) {
		t.Errorf("Invested = %v, want 1000", got.Invested)
	}
	if want := Percent(10); !near(got.Percentage(), want) {
		t.Errorf("Percentage() = %v, want %v", got.Percentage(), want)
	}
	if !got.Value().Equal(dec("1100")) {
		t.Errorf("Value() = %v, want 1100", got.Value())
	}
}

func TestAssetGain_OrderIndependent(t *testing.T) {
	txs := []Transaction{buy(10, "100"), buy(3, "152.35"), buy(7, "0.5"), buy(1, "99.99")}
	q := quote("AI.PA", "123.45", "EUR")
	want := AssetGain(asset("AI.PA", txs...), q)

	// every rotation and the reverse order
	for i := range txs {
		rotated := append(append([]Transaction{}, txs[i:]...), txs[:i]...)
		got := AssetGain(asset("AI.PA", rotated...), q)
		if !got.Gain.Equal(want.Gain) || !got.Invested.Equal(want.Invested) {
			t.Errorf("rotation %d: AssetGain() = %+v, want %+v", i, got, want)
		}
	}
	reversed := []Transaction{txs[3], txs[2], txs[1], txs[0]}
	got := AssetGain(asset("AI.PA", reversed...), q)
	if !got.Gain.Equal(want.Gain) || !got.Invested.Equal(want.Invested) {
		t.Errorf("reversed: AssetGain() = %+v, want %+v", got, want)
	}
}

func TestAssetGain_NoTransaction(t *testing.T) {
	got := AssetGain(asset("AI.PA"), quote("AI.PA", "110", "EUR"))
	if !got.Gain.IsZero() || !got.Invested.IsZero() {
		t.Errorf("AssetGain() = %+v, want zero", got)
	}
	if got.Percentage() != 0 {
		t.Errorf("Percentage() = %v, want 0", got.Percentage())
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		gain, invested string
		want           Percent
	}{
		{"100", "1000", 10},
		{"-50", "200", -25},
		{"0", "1000", 0},
		{"10", "0", 0},
		{"1", "3", 33.3333},
	}
	for _, tt := range tests {
		if got := Percentage(dec(tt.gain), dec(tt.invested)); !near(got, tt.want) {
			t.Errorf("Percentage(%s, %s) = %v, want %v", tt.gain, tt.invested, got, tt.want)
		}
	}
}

func TestPortfolioGain(t *testing.T) {
	p := newPortfolio("pea")
	p.assets["AI.PA"] = asset("AI.PA", buy(10, "100"))
	p.assets["MC.PA"] = asset("MC.PA", buy(2, "700"), buy(1, "400"))
	p.assets["OR.PA"] = asset("OR.PA") // no transaction, not valued
	p.assets["AI.PA"].cost = &CostConstraint{Max: decp("105"), Percentage: decp("10")}

	provider := newFakeProvider(quote("AI.PA", "110", "EUR"), quote("MC.PA", "600", "EUR"))
	v, err := PortfolioGain(context.Background(), p, provider)
	if err != nil {
		t.Fatalf("PortfolioGain() error = %v", err)
	}
	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2", provider.calls)
	}
	if len(v.Lines) != 2 || v.Lines[0].Ticker != "AI.PA" || v.Lines[1].Ticker != "MC.PA" {
		t.Fatalf("Lines = %+v, want AI.PA and MC.PA", v.Lines)
	}
	if v.Lines[1].Quantity != 3 {
		t.Errorf("MC.PA quantity = %d, want 3", v.Lines[1].Quantity)
	}
	// AI.PA: +100 on 1000, MC.PA: 3×600 − 1800 = 0 on 1800
	if !v.Total.Gain.Equal(dec("100")) || !v.Total.Invested.Equal(dec("2800")) {
		t.Errorf("Total = %+v, want gain 100, invested 2800", v.Total)
	}
	if want := Percent(100.0 / 28); !near(v.Percentage(), want) {
		t.Errorf("Percentage() = %v, want %v", v.Percentage(), want)
	}
	if v.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", v.Currency())
	}
	alerts := v.Lines[0].Alerts
	if len(alerts) != 2 || alerts[0].Kind != AboveMax || alerts[1].Kind != TargetReached {
		t.Errorf("AI.PA alerts = %v, want above max and target reached", alerts)
	}
	if len(v.Lines[1].Alerts) != 0 {
		t.Errorf("MC.PA alerts = %v, want none", v.Lines[1].Alerts)
	}
}

func TestPortfolioGain_Empty(t *testing.T) {
	p := newPortfolio("pea")
	p.assets["OR.PA"] = asset("OR.PA")

	_, err := PortfolioGain(context.Background(), p, newFakeProvider())
	if !errors.Is(err, ErrEmptyPortfolio) {
		t.Errorf("PortfolioGain() error = %v, want %v", err, ErrEmptyPortfolio)
	}
}

func TestPortfolioGain_ZeroNetIsNotEmpty(t *testing.T) {
	p := newPortfolio("pea")
	p.assets["AI.PA"] = asset("AI.PA", buy(5, "100"))

	v, err := PortfolioGain(context.Background(), p, newFakeProvider(quote("AI.PA", "100", "EUR")))
	if err != nil {
		t.Fatalf("PortfolioGain() error = %v", err)
	}
	if !v.Total.Gain.IsZero() || v.Percentage() != 0 {
		t.Errorf("Total = %+v, want a zero gain", v.Total)
	}
}

func TestPortfolioGain_ProviderError(t *testing.T) {
	p := newPortfolio("pea")
	p.assets["AI.PA"] = asset("AI.PA", buy(5, "100"))
	p.assets["XX"] = asset("XX", buy(5, "100"))

	_, err := PortfolioGain(context.Background(), p, newFakeProvider(quote("AI.PA", "100", "EUR")))
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("PortfolioGain() error = %v, want %v", err, ErrProvider)
	}
	var e *Error
	if !errors.As(err, &e) || e.Ticker != "XX" {
		t.Errorf("PortfolioGain() error = %v, want it to name XX", err)
	}
}

func TestValuation_MixedCurrencies(t *testing.T) {
	p := newPortfolio("cto")
	p.assets["AAPL"] = asset("AAPL", buy(1, "100"))
	p.assets["AI.PA"] = asset("AI.PA", buy(1, "100"))

	v, err := PortfolioGain(context.Background(), p, newFakeProvider(quote("AAPL", "150", "USD"), quote("AI.PA", "150", "EUR")))
	if err != nil {
		t.Fatal(err)
	}
	if v.Currency() != "" {
		t.Errorf("Currency() = %q, want none for mixed currencies", v.Currency())
	}
}
