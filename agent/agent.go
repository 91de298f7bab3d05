// Package agent asks a Gemini model to comment on a portfolio valuation.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"google.golang.org/genai"
)

const instruction = `You are a financial analyst reviewing a private stock portfolio.
The portfolio only records purchases: the gain of an asset is its current value
minus the amount paid for it. Alerts are raised when a price crosses the bounds
chosen by the owner, or when the gain reaches the owner's target.
Be factual and brief, answer in markdown. Use the get_quote tool when you need
the price of a ticker that is not in the portfolio.`

// NewAnalyst returns the expert commenting on valuations.
func NewAnalyst(model string, quotes folio.QuoteProvider) *Expert {
	tools := []Function{QuoteTool{Quotes: quotes}}
	return &Expert{
		Name:      "Analyst",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		},
		Library: NewLibrary(tools),
	}
}

// Prompt is the first message sent about a valuation.
func Prompt(v *folio.Valuation, question string) string {
	var b strings.Builder
	b.WriteString("Here is the current valuation of my portfolio:\n\n")
	b.WriteString(renderer.ValuationMarkdown(v))
	b.WriteString("\n")
	if question = strings.TrimSpace(question); question != "" {
		b.WriteString(question)
	} else {
		b.WriteString("Comment on its performance, the alerts and the concentration of the positions.")
	}
	return b.String()
}

// Agent runs a question and answer session with the Analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Expert
}

func New(w io.Writer, r io.Reader, analyst *Expert) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Analyst: analyst}
}

const prompt = "assist> "

// Run sends the prompts first, then reads follow-up questions until "bye"
// or the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Analyst.chat == nil {
		if err := a.Analyst.Start(ctx, client); err != nil {
			return err
		}
	}

	for {
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
		} else {
			fmt.Fprint(a.w, prompt)
			var err error
			input, err = a.r.ReadString('\n')
			if err == io.EOF && strings.TrimSpace(input) == "" {
				return nil // Clean exit on Ctrl+D
			}
			if err != nil && err != io.EOF {
				return err
			}
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		content, err := a.Analyst.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, Text(content))
	}
}
