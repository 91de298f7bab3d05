package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// ValuationMarkdown renders the per asset gains of a portfolio and its total.
func ValuationMarkdown(v *folio.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio %s", v.Portfolio))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Ticker", "Quantity", "Price", "Invested", "Gain / Loss", "Change", "Alerts"},
	}
	for _, l := range v.Lines {
		cur := l.Quote.Currency
		table.Rows = append(table.Rows, []string{
			l.Ticker,
			fmt.Sprint(l.Quantity),
			folio.M(l.Quote.Close, cur).String(),
			folio.M(l.Gain.Invested, cur).String(),
			folio.M(l.Gain.Gain, cur).SignedString(),
			l.Gain.Percentage().SignedString(),
			alerts(l.Alerts),
		})
	}
	cur := v.Currency()
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		"",
		"",
		md.Bold(folio.M(v.Total.Invested, cur).String()),
		md.Bold(folio.M(v.Total.Gain, cur).SignedString()),
		md.Bold(v.Percentage().SignedString()),
		"",
	})
	doc.Table(table)

	if cur == "" && len(v.Lines) > 1 {
		doc.PlainText(md.Italic("Assets are quoted in different currencies, totals are nominal sums."))
	}
	return doc.String()
}

func alerts(list []folio.Alert) string {
	s := make([]string, 0, len(list))
	for _, a := range list {
		s = append(s, a.String())
	}
	return strings.Join(s, ", ")
}
