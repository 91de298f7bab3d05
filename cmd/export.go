package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/folio/export"
	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export portfolios to a spreadsheet" }
func (*exportCmd) Usage() string {
	return `pft export [-o file.xlsx]

  Writes one sheet per portfolio listing every purchase and the bounds of
  each asset.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "portfolios.xlsx", "spreadsheet file to write")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 0 {
		return a.usage("export takes no argument")
	}
	l, err := a.Ledger()
	if err != nil {
		return a.fail(err)
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, l.Snapshot()); err != nil {
		return a.fail(err)
	}
	if err := os.WriteFile(c.output, buf.Bytes(), 0o644); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.Out, "portfolios exported to %s\n", c.output)
	return subcommands.ExitSuccess
}
