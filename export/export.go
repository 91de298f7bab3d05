// Package export writes portfolios to an xlsx spreadsheet.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/etnz/folio"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var header = []string{"Ticker", "Date", "Quantity", "Price", "Cost", "Min", "Max", "Target %"}

// Write writes one sheet per portfolio, with one row per transaction.
// Assets without transaction get a row with their bounds only.
func Write(w io.Writer, s *folio.Snapshot) (err error) {
	if s.Len() == 0 {
		return errors.New("no portfolio to export")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing file", slog.String("err", err.Error()))
		}
	}()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cfe2f3"}},
	})
	if err != nil {
		return err
	}

	ordinal := 0
	for p := range s.Portfolios() {
		ordinal++
		if err := fillSheet(f, p, SheetName(ordinal, p.Name()), headerStyle); err != nil {
			return fmt.Errorf("sheet of %q: %w", p.Name(), err)
		}
	}

	// remove the default sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", slog.String("err", err.Error()))
	}
	return f.Write(w)
}

func fillSheet(f *excelize.File, p *folio.Portfolio, sheet string, headerStyle int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	row := 1
	for a := range p.Assets() {
		cost, _ := a.Cost()
		bounds := []any{optional(cost.Min), optional(cost.Max), optional(cost.Percentage)}
		if a.Len() == 0 {
			row++
			cells := append([]any{a.Ticker(), nil, nil, nil, nil}, bounds...)
			if err := setRow(f, sheet, row, cells); err != nil {
				return err
			}
			continue
		}
		for _, tx := range a.Transactions() {
			row++
			cells := append([]any{
				a.Ticker(),
				tx.Date().ISO(),
				int64(tx.Quantity()),
				tx.Price().InexactFloat64(),
				tx.Cost().InexactFloat64(),
			}, bounds...)
			if err := setRow(f, sheet, row, cells); err != nil {
				return err
			}
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func optional(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}

// SheetName returns a valid sheet name for a portfolio: prefixed with its
// ordinal, without the characters excel forbids, and at most 31 characters long.
func SheetName(ordinal int, name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	s := []rune(fmt.Sprintf("%d. %s", ordinal, name))
	if len(s) > 31 {
		s = s[:31]
	}
	return string(s)
}
