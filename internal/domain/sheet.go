package domain

import "fmt"

// Day count bounds for a sign-in sheet.
const (
	MinDays = 1
	MaxDays = 6
)

// HeaderRows is the number of header rows at the top of every TableDocument.
// Row 0 carries the merged "Day N" headings, row 1 the "Time In"/"Sign" labels.
const HeaderRows = 2

// SheetSpec is the validated input to the layout engine.
// Construct it with NewSheetSpec; the zero value is not valid.
type SheetSpec struct {
	roster []string
	days   int
}

// NewSheetSpec validates days and takes a private copy of roster so later
// changes to the caller's slice cannot leak into the SheetSpec.
func NewSheetSpec(roster []string, days int) (SheetSpec, error) {
	if err := ValidateDays(days); err != nil {
		return SheetSpec{}, err
	}
	cp := make([]string, len(roster))
	copy(cp, roster)
	return SheetSpec{roster: cp, days: days}, nil
}

// Roster returns a copy of the roster snapshot.
func (s SheetSpec) Roster() []string {
	cp := make([]string, len(s.roster))
	copy(cp, s.roster)
	return cp
}

// Days returns the number of day column pairs on the sheet.
func (s SheetSpec) Days() int { return s.days }

// Columns returns the column count every row of the sheet must have.
func (s SheetSpec) Columns() int { return ColumnsFor(s.days) }

// ValidateDays reports ErrInvalidRange when days is outside [MinDays, MaxDays].
func ValidateDays(days int) error {
	if days < MinDays || days > MaxDays {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidRange, days, MinDays, MaxDays)
	}
	return nil
}

// ColumnsFor returns 1 + 2*days: the identifier column plus a
// "Time In"/"Sign" pair per day.
func ColumnsFor(days int) int {
	return 1 + 2*days
}

// Alignment is the horizontal alignment of text inside a cell.
type Alignment string

const (
	AlignNone   Alignment = ""
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// ToEnd is used in a CellRange bound to mean "through the last row/column".
const ToEnd = -1

// CellRange is an inclusive rectangle of cells. LastRow and LastCol may be
// ToEnd, in which case the range extends to the final row or column of the
// document it is applied to.
type CellRange struct {
	FirstRow int `json:"first_row"`
	LastRow  int `json:"last_row"`
	FirstCol int `json:"first_col"`
	LastCol  int `json:"last_col"`
}

// Contains reports whether (row, col) lies in the range for a document with
// the given number of rows and columns.
func (r CellRange) Contains(row, col, rows, cols int) bool {
	lastRow, lastCol := r.LastRow, r.LastCol
	if lastRow == ToEnd {
		lastRow = rows - 1
	}
	if lastCol == ToEnd {
		lastCol = cols - 1
	}
	return row >= r.FirstRow && row <= lastRow && col >= r.FirstCol && col <= lastCol
}

// StyleRule applies presentation attributes to a range of cells.
// Rules are applied in order; a later rule overrides an earlier one only for
// the attributes it sets (a non-empty Align, a true Bold or Grid).
type StyleRule struct {
	Range CellRange `json:"range"`
	Align Alignment `json:"align,omitempty"`
	Bold  bool      `json:"bold,omitempty"`
	Grid  bool      `json:"grid,omitempty"`
}

// Span merges the cells FirstCol..LastCol (inclusive) of one row into a single
// visual cell that shows the text of the first cell.
type Span struct {
	Row      int `json:"row"`
	FirstCol int `json:"first_col"`
	LastCol  int `json:"last_col"`
}

// CellStyle is the resolved presentation of a single cell.
type CellStyle struct {
	Align Alignment
	Bold  bool
	Grid  bool
}

// TableDocument is the abstract description of a sign-in sheet produced by the
// layout engine and consumed by the renderer. Rows 0 and 1 are headers; each
// later row corresponds to one roster entry, in roster order.
type TableDocument struct {
	Rows   [][]string  `json:"rows"`
	Spans  []Span      `json:"spans"`
	Styles []StyleRule `json:"styles"`
}

// Columns returns the width of the first row, or 0 for an empty document.
func (d TableDocument) Columns() int {
	if len(d.Rows) == 0 {
		return 0
	}
	return len(d.Rows[0])
}

// DataRows returns the number of rows below the headers.
func (d TableDocument) DataRows() int {
	if len(d.Rows) < HeaderRows {
		return 0
	}
	return len(d.Rows) - HeaderRows
}

// StyleAt resolves the style rules that apply to (row, col).
func (d TableDocument) StyleAt(row, col int) CellStyle {
	var st CellStyle
	rows, cols := len(d.Rows), d.Columns()
	for _, rule := range d.Styles {
		if !rule.Range.Contains(row, col, rows, cols) {
			continue
		}
		if rule.Align != AlignNone {
			st.Align = rule.Align
		}
		if rule.Bold {
			st.Bold = true
		}
		if rule.Grid {
			st.Grid = true
		}
	}
	return st
}

// SpanAt returns the span that starts at (row, col), if any.
func (d TableDocument) SpanAt(row, col int) (Span, bool) {
	for _, s := range d.Spans {
		if s.Row == row && s.FirstCol == col {
			return s, true
		}
	}
	return Span{}, false
}

// Validate checks the structural invariants the renderer relies on: at least
// the two header rows, the same column count on every row, and spans that sit
// on row 0, stay in bounds, cover at least two columns, and do not overlap.
// Every failure wraps ErrMalformedDocument.
func (d TableDocument) Validate() error {
	if len(d.Rows) < HeaderRows {
		return fmt.Errorf("%w: %d rows, want at least %d header rows", ErrMalformedDocument, len(d.Rows), HeaderRows)
	}
	cols := d.Columns()
	if cols == 0 {
		return fmt.Errorf("%w: header row has no cells", ErrMalformedDocument)
	}
	for i, row := range d.Rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedDocument, i, len(row), cols)
		}
	}
	covered := make([]bool, cols)
	for _, s := range d.Spans {
		if s.Row != 0 {
			return fmt.Errorf("%w: span on row %d, spans are only allowed on row 0", ErrMalformedDocument, s.Row)
		}
		if s.FirstCol < 0 || s.LastCol >= cols || s.FirstCol >= s.LastCol {
			return fmt.Errorf("%w: span columns %d..%d out of bounds for %d columns", ErrMalformedDocument, s.FirstCol, s.LastCol, cols)
		}
		for c := s.FirstCol; c <= s.LastCol; c++ {
			if covered[c] {
				return fmt.Errorf("%w: spans overlap at column %d", ErrMalformedDocument, c)
			}
			covered[c] = true
		}
	}
	return nil
}
