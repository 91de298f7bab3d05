package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "run commands interactively" }
func (*shellCmd) Usage() string {
	return `pft shell

  Reads commands, one per line, without the 'pft' prefix.
  The ledger is loaded once for the whole session.
  Type 'exit' or 'quit' to leave.

`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

const shellPrompt = ">> "

func (c *shellCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	a := app(args)
	if f.NArg() != 0 {
		return a.usage("shell takes no argument")
	}

	// a ledger that cannot be opened ends the session before it starts
	if _, err := a.Ledger(); err != nil {
		return a.fail(err)
	}

	scanner := bufio.NewScanner(a.In)
	for {
		fmt.Fprint(a.Out, shellPrompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(a.Out, "Bye!")
			return subcommands.ExitSuccess
		}
		a.run(ctx, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.Out)
	return subcommands.ExitSuccess
}

// run executes one shell line. Failures are reported and the session goes on.
func (a *App) run(ctx context.Context, fields []string) subcommands.ExitStatus {
	fs := flag.NewFlagSet("pft", flag.ContinueOnError)
	fs.SetOutput(a.Err)
	commander := subcommands.NewCommander(fs, "pft")
	commander.Output = a.Out
	commander.Error = a.Err
	register(commander)

	if err := fs.Parse(fields); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return subcommands.ExitSuccess
		}
		return subcommands.ExitUsageError
	}
	return commander.Execute(ctx, a)
}
