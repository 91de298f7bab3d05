package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/folio/cmd"
	"github.com/etnz/folio/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	setupLogger(cfg)

	// exits when the shell is asking for completions
	cmd.Completion(cfg).Complete("pft")

	app := cmd.NewApp(cfg)
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory of the portfolio file (env PFT_DATA_DIR)")
	flag.StringVar(&cfg.Provider, "provider", cfg.Provider, "quote provider, yahoo or eodhd (env PFT_PROVIDER)")
	flag.BoolVar(&app.Plain, "plain", false, "print raw markdown")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx, app)
	stop()
	os.Exit(int(status))
}

func setupLogger(cfg *config.Config) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}
