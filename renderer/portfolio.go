package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the recorded content of a portfolio: cost
// constraints and transactions, without any quote.
func PortfolioMarkdown(p *folio.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio %s", p.Name()))
	for a := range p.Assets() {
		doc.H2(a.Ticker())
		if cost, ok := a.Cost(); ok && !cost.IsZero() {
			doc.BulletList(
				"min: "+optional(cost.Min),
				"max: "+optional(cost.Max),
				"target: "+optional(cost.Percentage)+"%",
			)
		}
		if a.Len() == 0 {
			doc.PlainText("No transaction.")
			continue
		}
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Date", "Quantity", "Price", "Cost"},
		}
		for _, tx := range a.Transactions() {
			table.Rows = append(table.Rows, []string{
				tx.Date().String(),
				fmt.Sprint(tx.Quantity()),
				tx.Price().String(),
				tx.Cost().StringFixed(2),
			})
		}
		doc.Table(table)
	}
	return doc.String()
}
