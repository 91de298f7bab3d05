package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/etnz/folio"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

type fakeQuotes struct{}

func (fakeQuotes) Exists(ctx context.Context, ticker string) (bool, error) { return ticker == "AAPL", nil }

func (fakeQuotes) LastQuote(ctx context.Context, ticker string) (folio.Quote, error) {
	if ticker != "AAPL" {
		return folio.Quote{}, folio.ErrTickerNotFound
	}
	return folio.Quote{Symbol: "AAPL", Close: decimal.RequireFromString("210.25"), Open: decimal.RequireFromString("209"), Currency: "USD", InstrumentType: "EQUITY"}, nil
}

func (fakeQuotes) Search(ctx context.Context, query string) ([]folio.SearchResult, error) {
	return nil, errors.New("not implemented")
}

func TestPrompt(t *testing.T) {
	v := &folio.Valuation{
		Portfolio: "pea",
		Lines: []folio.Line{{
			Ticker:   "AI.PA",
			Quantity: 10,
			Quote:    folio.Quote{Symbol: "AI.PA", Close: decimal.NewFromInt(110), Currency: "EUR"},
			Gain:     folio.Gain{Gain: decimal.NewFromInt(100), Invested: decimal.NewFromInt(1000)},
		}},
		Total: folio.Gain{Gain: decimal.NewFromInt(100), Invested: decimal.NewFromInt(1000)},
	}

	got := Prompt(v, "")
	for _, want := range []string{"Portfolio pea", "AI.PA", "+10.00%", "Comment on"} {
		if !strings.Contains(got, want) {
			t.Errorf("Prompt() does not contain %q:\n%s", want, got)
		}
	}
	got = Prompt(v, "Should I buy more?")
	if !strings.HasSuffix(got, "Should I buy more?") || strings.Contains(got, "Comment on") {
		t.Errorf("Prompt() with a question = %q", got)
	}
}

func TestQuoteTool(t *testing.T) {
	lib := NewLibrary([]Function{QuoteTool{Quotes: fakeQuotes{}}})
	ctx := context.Background()

	resp := lib(ctx, &genai.FunctionCall{ID: "1", Name: "get_quote", Args: map[string]any{"ticker": "AAPL"}})
	if resp.ID != "1" || resp.Response["close"] != "210.25" || resp.Response["currency"] != "USD" {
		t.Errorf("get_quote(AAPL) = %+v", resp)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "2", Name: "get_quote", Args: map[string]any{"ticker": "NOPE"}})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("get_quote(NOPE) = %+v, want an error", resp)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "3", Name: "get_quote", Args: map[string]any{"ticker": 42}})
	if _, ok := resp.Response["error"]; !ok {
		t.Errorf("get_quote(42) = %+v, want an error", resp)
	}

	resp = lib(ctx, &genai.FunctionCall{ID: "4", Name: "sell_everything"})
	if resp.Name != "sell_everything" || resp.Response["error"] == nil {
		t.Errorf("unknown function = %+v, want an error", resp)
	}
}

func TestNewAnalyst(t *testing.T) {
	a := NewAnalyst("gemini-2.5-flash", fakeQuotes{})
	decls := a.Config.Tools[0].FunctionDeclarations
	if len(decls) != 1 || decls[0].Name != "get_quote" {
		t.Errorf("Analyst declares %v, want get_quote", decls)
	}
	if a.ModelName != "gemini-2.5-flash" {
		t.Errorf("ModelName = %q", a.ModelName)
	}
}

func TestText(t *testing.T) {
	c := &genai.Content{Parts: []*genai.Part{{Text: "a"}, {Text: "b"}}}
	if got := Text(c); got != "ab" {
		t.Errorf("Text() = %q, want ab", got)
	}
}
