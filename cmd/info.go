package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type infoCmd struct{}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "print the latest quote of a ticker" }
func (*infoCmd) Usage() string {
	return `pft info <ticker>

  Prints the latest close, the open and the day change of a ticker.

`
}

func (*infoCmd) SetFlags(f *flag.FlagSet) {}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 1 {
		return a.usage("info requires exactly one ticker")
	}
	quotes, err := a.Quotes()
	if err != nil {
		return a.fail(err)
	}
	q, err := quotes.LastQuote(ctx, f.Arg(0))
	if err != nil {
		return a.fail(err)
	}
	a.printMarkdown(renderer.QuoteMarkdown(q))
	return subcommands.ExitSuccess
}
