package cmd

import (
	"os"

	"github.com/etnz/folio"
	"github.com/etnz/folio/config"
	"github.com/etnz/folio/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the pft command line for shell completion.
func Completion(cfg *config.Config) *complete.Command {
	portfolios := complete.PredictFunc(func(prefix string) []string {
		return portfolioNames(cfg.DataDir)
	})
	topics := complete.PredictFunc(func(prefix string) []string {
		names, err := docs.GetAllTopics()
		if err != nil {
			return nil
		}
		return names
	})

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add":    {Args: portfolios},
			"entry":  {Args: portfolios},
			"show":   {Args: portfolios, Flags: map[string]complete.Predictor{"tx": predict.Nothing}},
			"assist": {Args: portfolios},
			"list":   {},
			"info":   {},
			"search": {},
			"shell":  {},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*.xlsx")}},
			"help":   {Args: topics},
		},
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"provider": predict.Set(config.Providers),
			"plain":    predict.Nothing,
		},
	}
}

// portfolioNames reads the portfolio names without creating the store.
func portfolioNames(dir string) []string {
	store := folio.NewFileStore(dir)
	if _, err := os.Stat(store.Path()); err != nil {
		return nil
	}
	snap, err := store.Load()
	if err != nil {
		return nil
	}
	var names []string
	for p := range snap.Portfolios() {
		names = append(names, p.Name())
	}
	return names
}
