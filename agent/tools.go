package agent

import (
	"context"
	"fmt"

	"github.com/etnz/folio"
	"google.golang.org/genai"
)

// QuoteTool lets the model fetch the latest quote of any ticker.
type QuoteTool struct {
	Quotes folio.QuoteProvider
}

func (QuoteTool) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "get_quote",
		Description: "Returns the latest price, opening price, currency and instrument type of a ticker.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"ticker": {
					Type:        genai.TypeString,
					Description: "The ticker symbol, as used in the portfolio.",
				},
			},
			Required: []string{"ticker"},
		},
	}
}

func (t QuoteTool) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	name := t.Declaration().Name
	ticker, ok := args["ticker"].(string)
	if !ok {
		return errorResponse(id, name, fmt.Errorf("invalid ticker type got %T, expected string", args["ticker"]))
	}
	q, err := t.Quotes.LastQuote(ctx, ticker)
	if err != nil {
		return errorResponse(id, name, err)
	}
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"symbol":   q.Symbol,
			"close":    q.Close.String(),
			"open":     q.Open.String(),
			"currency": q.Currency,
			"type":     q.InstrumentType,
		},
	}
}
