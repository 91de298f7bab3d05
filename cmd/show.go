package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	transactions bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "value a portfolio against the latest quotes" }
func (*showCmd) Usage() string {
	return `pft show [-tx] <portfolio>

  Prints, for each asset, the quantity held, the latest price, the gain or
  loss and the alerts raised by its bounds, followed by the portfolio total.

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.transactions, "tx", false, "list the recorded purchases instead of valuing them")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 1 {
		return a.usage("show requires exactly one portfolio")
	}

	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}
	p, err := l.Portfolio(f.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	if c.transactions {
		a.printMarkdown(renderer.PortfolioMarkdown(p))
		return subcommands.ExitSuccess
	}

	quotes, err := a.Quotes()
	if err != nil {
		return a.fail(err)
	}
	v, err := folio.PortfolioGain(ctx, p, quotes)
	if errors.Is(err, folio.ErrEmptyPortfolio) {
		fmt.Fprintf(a.Out, "%s has no purchase yet, use 'pft entry' to record one\n", p.Name())
		return subcommands.ExitSuccess
	}
	if err != nil {
		return a.fail(err)
	}
	a.printMarkdown(renderer.ValuationMarkdown(v))
	return subcommands.ExitSuccess
}
