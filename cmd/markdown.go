package cmd

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal, or prints it as is in plain mode.
func (a *App) printMarkdown(doc string) {
	if a.Plain {
		fmt.Fprint(a.Out, doc)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(doc); err == nil {
			fmt.Fprint(a.Out, out)
			return
		}
	}
	slog.Debug("markdown rendering failed", "err", err)
	fmt.Fprint(a.Out, doc)
}
