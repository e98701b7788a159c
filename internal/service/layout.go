package service

import (
	"fmt"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// Header labels used on every sign-in sheet.
const (
	LabelEmail  = "Email"
	LabelTimeIn = "Time In"
	LabelSign   = "Sign"
)

// Layout builds the sign-in sheet table for roster over days days.
//
// Row 0 holds "Email" and a "Day N" heading per day, each merged across the
// day's two columns by a span. Row 1 holds a "Time In"/"Sign" pair per day.
// Then one row per roster entry, in roster order, with only the first cell
// filled. Every row has 1 + 2*days cells.
//
// days outside [domain.MinDays, domain.MaxDays] returns an error wrapping
// domain.ErrInvalidRange before any row is built.
func Layout(roster []string, days int) (domain.TableDocument, error) {
	spec, err := domain.NewSheetSpec(roster, days)
	if err != nil {
		return domain.TableDocument{}, fmt.Errorf("service.Layout: %w", err)
	}
	return layoutSpec(spec), nil
}

func layoutSpec(spec domain.SheetSpec) domain.TableDocument {
	days, cols := spec.Days(), spec.Columns()
	entries := spec.Roster()

	rows := make([][]string, 0, domain.HeaderRows+len(entries))
	spans := make([]domain.Span, 0, days)

	dayRow := make([]string, 0, cols)
	labelRow := make([]string, 0, cols)
	dayRow = append(dayRow, LabelEmail)
	labelRow = append(labelRow, "")
	for day := 1; day <= days; day++ {
		first := 2*day - 1
		dayRow = append(dayRow, fmt.Sprintf("Day %d", day), "")
		labelRow = append(labelRow, LabelTimeIn, LabelSign)
		spans = append(spans, domain.Span{Row: 0, FirstCol: first, LastCol: first + 1})
	}
	rows = append(rows, dayRow, labelRow)

	for _, id := range entries {
		row := make([]string, cols)
		row[0] = id
		rows = append(rows, row)
	}

	return domain.TableDocument{
		Rows:   rows,
		Spans:  spans,
		Styles: sheetStyles(),
	}
}

// sheetStyles: grid and centered text everywhere, bold headers, and the
// identifier column left-aligned from the first data row down.
func sheetStyles() []domain.StyleRule {
	all := domain.CellRange{FirstRow: 0, LastRow: domain.ToEnd, FirstCol: 0, LastCol: domain.ToEnd}
	return []domain.StyleRule{
		{Range: all, Grid: true},
		{Range: all, Align: domain.AlignCenter},
		{Range: domain.CellRange{FirstRow: 0, LastRow: domain.HeaderRows - 1, FirstCol: 0, LastCol: domain.ToEnd}, Bold: true},
		{Range: domain.CellRange{FirstRow: domain.HeaderRows, LastRow: domain.ToEnd, FirstCol: 0, LastCol: 0}, Align: domain.AlignLeft},
	}
}
