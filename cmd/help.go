package cmd

import (
	"context"
	"flag"

	"github.com/etnz/folio/docs"
	"github.com/google/subcommands"
)

type helpCmd struct{}

func (*helpCmd) Name() string     { return "help" }
func (*helpCmd) Synopsis() string { return "show documentation" }
func (*helpCmd) Usage() string {
	return `pft help [topic...]

  Shows the documentation of the given topics, or the overview.
  Use '*' to print every topic.

`
}

func (*helpCmd) SetFlags(f *flag.FlagSet) {}

func (c *helpCmd) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return a.fail(err)
	}
	a.printMarkdown(doc)
	return subcommands.ExitSuccess
}
