package cmd

import (
	"context"
	"errors"
	"flag"
	"strings"

	"github.com/etnz/folio"
	"github.com/etnz/folio/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "discuss a portfolio valuation with an AI analyst" }
func (*assistCmd) Usage() string {
	return `pft assist <portfolio> [question]

  Values the portfolio and starts a session with a Gemini model about it.
  Type 'bye' to leave. Requires GEMINI_API_KEY.

`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() < 1 {
		return a.usage("assist requires a portfolio")
	}
	if a.Config.Gemini.APIKey == "" {
		return a.fail(errors.New("GEMINI_API_KEY is not set"))
	}

	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}
	p, err := l.Portfolio(f.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	quotes, err := a.Quotes()
	if err != nil {
		return a.fail(err)
	}
	v, err := folio.PortfolioGain(ctx, p, quotes)
	if err != nil {
		return a.fail(err)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.Config.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return a.fail(err)
	}

	analyst := agent.NewAnalyst(a.Config.Gemini.Model, quotes)
	session := agent.New(a.Out, a.In, analyst)
	question := strings.Join(f.Args()[1:], " ")
	if err := session.Run(ctx, client, agent.Prompt(v, question)); err != nil {
		return a.fail(err)
	}
	return subcommands.ExitSuccess
}
