package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/folio"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the portfolio file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pft fmt

  Validates the portfolio file and writes it back in canonical form, with
  portfolios and tickers sorted. Use it after editing the file by hand.

`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 0 {
		return a.usage("fmt takes no argument")
	}
	store := folio.NewFileStore(a.Config.DataDir)
	snap, err := store.Load()
	if err != nil {
		return a.fail(err)
	}
	if err := store.Save(snap); err != nil {
		return a.fail(err)
	}

	assets, transactions := 0, 0
	for p := range snap.Portfolios() {
		for asset := range p.Assets() {
			assets++
			transactions += asset.Len()
		}
	}
	fmt.Fprintf(a.Out, "%s: %d portfolios, %d assets, %d transactions\n", store.Path(), snap.Len(), assets, transactions)
	return subcommands.ExitSuccess
}
