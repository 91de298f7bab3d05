package cmd

import (
	"context"
	"flag"
	"strings"

	"github.com/etnz/folio/renderer"
	"github.com/google/subcommands"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search tickers by name" }
func (*searchCmd) Usage() string {
	return `pft search <search term>

  Searches the quote provider for instruments matching the term.

`
}

func (*searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() == 0 {
		return a.usage("search requires a search term")
	}
	query := strings.Join(f.Args(), " ")
	quotes, err := a.Quotes()
	if err != nil {
		return a.fail(err)
	}
	results, err := quotes.Search(ctx, query)
	if err != nil {
		return a.fail(err)
	}
	a.printMarkdown(renderer.SearchMarkdown(query, results))
	return subcommands.ExitSuccess
}
