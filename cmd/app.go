// Package cmd implements the pft commands.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/etnz/folio/eodhd"
	"github.com/etnz/folio/yahoo"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one
// with an *App as first argument.
func Register(c *subcommands.Commander) {
	register(c)
	c.Register(&shellCmd{}, "")
}

// register the commands available both from the command line and the shell.
func register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "portfolio")
	c.Register(&entryCmd{}, "portfolio")
	c.Register(&showCmd{}, "portfolio")
	c.Register(&listCmd{}, "portfolio")
	c.Register(&exportCmd{}, "portfolio")
	c.Register(&fmtCmd{}, "portfolio")
	c.Register(&assistCmd{}, "portfolio")

	c.Register(&infoCmd{}, "market")
	c.Register(&searchCmd{}, "market")

	c.Register(&helpCmd{}, "")
	c.Register(c.CommandsCommand(), "")
	c.Register(c.FlagsCommand(), "")
}

// App is the state shared by commands during a run.
type App struct {
	Config *config.Config
	Out    io.Writer
	Err    io.Writer
	In     io.Reader
	Plain  bool // Plain prints markdown as is, without terminal styling.

	quotes folio.QuoteProvider
	ledger *folio.Ledger
}

// NewApp returns an App using the standard streams.
func NewApp(cfg *config.Config) *App {
	return &App{Config: cfg, Out: os.Stdout, Err: os.Stderr, In: os.Stdin}
}

// Quotes returns the quote provider selected in the configuration.
func (a *App) Quotes() (folio.QuoteProvider, error) {
	if a.quotes != nil {
		return a.quotes, nil
	}
	if err := a.Config.Validate(); err != nil {
		return nil, err
	}
	switch a.Config.Provider {
	case "eodhd":
		a.quotes = eodhd.New(a.Config)
	default:
		a.quotes = yahoo.New(a.Config)
	}
	return a.quotes, nil
}

// Ledger opens the ledger stored in the data directory, once.
func (a *App) Ledger() (*folio.Ledger, error) {
	if a.ledger != nil {
		return a.ledger, nil
	}
	quotes, err := a.Quotes()
	if err != nil {
		return nil, err
	}
	l, err := folio.NewLedger(folio.NewFileStore(a.Config.DataDir), quotes)
	if err != nil {
		return nil, err
	}
	a.ledger = l
	return l, nil
}

// app returns the *App passed to Commander.Execute.
func app(args []any) *App {
	if len(args) > 0 {
		if a, ok := args[0].(*App); ok {
			return a
		}
	}
	panic("commands must be executed with an *App argument")
}

// fail prints the error and returns ExitFailure.
func (a *App) fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: %v\n", err)
	return subcommands.ExitFailure
}

// usage prints an argument error and returns ExitUsageError.
func (a *App) usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.Err, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
