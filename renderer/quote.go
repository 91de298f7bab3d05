package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// QuoteMarkdown renders the latest quote of a ticker.
func QuoteMarkdown(q folio.Quote) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(q.Symbol)
	change := folio.Percentage(q.DayChange(), q.Open)
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Last"),
			md.Bold(folio.M(q.Close, q.Currency).String()),
		},
		Rows: [][]string{
			{"Open", folio.M(q.Open, q.Currency).String()},
			{"Day's Change", fmt.Sprintf("%s (%s)", folio.M(q.DayChange(), q.Currency).SignedString(), change.SignedString())},
			{"Currency", q.Currency},
			{"Type", q.InstrumentType},
		},
	})
	return doc.String()
}

// SearchMarkdown renders search results.
func SearchMarkdown(query string, results []folio.SearchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Search %q", query))
	if len(results) == 0 {
		doc.PlainText("No match.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Ticker", "Type", "Exchange", "Description"},
	}
	for _, r := range results {
		table.Rows = append(table.Rows, []string{md.Code(r.Symbol), r.DisplayType, r.Exchange, r.Description})
	}
	doc.Table(table)
	return doc.String()
}
