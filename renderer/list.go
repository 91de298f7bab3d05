package renderer

import (
	"bytes"
	"errors"

	"github.com/etnz/folio"
	md "github.com/nao1215/markdown"
)

// PortfolioRow is the outcome of valuing one portfolio for the list.
type PortfolioRow struct {
	Name      string
	Valuation *folio.Valuation // Valuation is nil when Err is set.
	Err       error
}

// PortfoliosMarkdown renders one line per portfolio with its total gain.
func PortfoliosMarkdown(rows []PortfolioRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolios")
	if len(rows) == 0 {
		doc.PlainText("No portfolio yet, use `pft add <portfolio> <ticker>` to create one.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Portfolio", "Invested", "Gain / Loss", "Change"},
	}
	for _, r := range rows {
		switch {
		case errors.Is(r.Err, folio.ErrEmptyPortfolio):
			table.Rows = append(table.Rows, []string{r.Name, "empty", "", ""})
		case r.Err != nil:
			table.Rows = append(table.Rows, []string{r.Name, "unavailable", "", ""})
		default:
			v := r.Valuation
			cur := v.Currency()
			table.Rows = append(table.Rows, []string{
				r.Name,
				folio.M(v.Total.Invested, cur).String(),
				folio.M(v.Total.Gain, cur).SignedString(),
				v.Percentage().SignedString(),
			})
		}
	}
	doc.Table(table)
	return doc.String()
}
