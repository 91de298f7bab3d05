package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list portfolios with their overall gain" }
func (*listCmd) Usage() string {
	return `pft list

  Lists every portfolio with its invested amount and gain or loss.
  A portfolio that cannot be valued is reported without stopping the list.

`
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 0 {
		return a.usage("list takes no argument")
	}
	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}
	quotes, err := a.Quotes()
	if err != nil {
		return a.fail(err)
	}

	var rows []renderer.PortfolioRow
	for p := range l.Snapshot().Portfolios() {
		v, err := folio.PortfolioGain(ctx, p, quotes)
		rows = append(rows, renderer.PortfolioRow{Name: p.Name(), Valuation: v, Err: err})
	}
	a.printMarkdown(renderer.PortfoliosMarkdown(rows))
	return subcommands.ExitSuccess
}
