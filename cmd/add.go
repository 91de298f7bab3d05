package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an asset to a portfolio and set its alerting bounds" }
func (*addCmd) Usage() string {
	return `pft add <portfolio> <ticker> [min] [max] [percentage]

  Adds the ticker to the portfolio, creating the portfolio if needed.
  The ticker must be known to the quote provider.
  Bounds replace the previous ones, use '-' to leave one unset.
  Without bounds, the current bounds of an existing asset are kept.

`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() < 2 || f.NArg() > 5 {
		return a.usage("add requires a portfolio, a ticker and up to three bounds")
	}
	portfolio, ticker := f.Arg(0), f.Arg(1)

	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}

	if f.NArg() == 2 {
		if err := l.AddAsset(ctx, portfolio, ticker); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.Out, "%s is in %s\n", ticker, portfolio)
		return subcommands.ExitSuccess
	}

	var bounds [3]string
	for i, arg := range f.Args()[2:] {
		if arg != "-" {
			bounds[i] = arg
		}
	}
	if err := l.SetCostConstraint(ctx, portfolio, ticker, bounds[0], bounds[1], bounds[2]); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "bounds of %s in %s are set\n", ticker, portfolio)
	return subcommands.ExitSuccess
}
