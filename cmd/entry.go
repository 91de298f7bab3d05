package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type entryCmd struct{}

func (*entryCmd) Name() string     { return "entry" }
func (*entryCmd) Synopsis() string { return "record a purchase" }
func (*entryCmd) Usage() string {
	return `pft entry <portfolio> <ticker> [buy] <quantity> <price> [D/M/YYYY]

  Records the purchase of quantity units at a unit price, today or on the
  given day. The asset must have been added first.
  Only purchases are supported.

`
}

func (*entryCmd) SetFlags(f *flag.FlagSet) {}

func (c *entryCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() < 4 {
		return a.usage("entry requires a portfolio, a ticker, a quantity and a price")
	}
	portfolio, ticker, rest := f.Arg(0), f.Arg(1), f.Args()[2:]

	// an optional side word comes before the quantity
	if _, err := strconv.ParseFloat(rest[0], 64); err != nil {
		if _, err := folio.ParseSide(rest[0]); err != nil {
			return a.fail(err)
		}
		rest = rest[1:]
	}
	if len(rest) < 2 || len(rest) > 3 {
		return a.usage("entry requires a quantity, a price and an optional date")
	}
	day := ""
	if len(rest) == 3 {
		day = rest[2]
	}

	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}
	if err := l.RecordTransaction(portfolio, ticker, rest[0], rest[1], day); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "bought %s %s at %s\n", rest[0], ticker, rest[1])
	return subcommands.ExitSuccess
}
