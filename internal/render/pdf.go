// Package render turns an abstract domain.TableDocument into a printable PDF.
//
// The page geometry is fixed: A4 landscape, 10 mm margins, 8 mm rows. When the
// data rows do not fit on one page the table continues on the next, and both
// header rows are repeated at the top of every page so each printed sheet can
// be filled in on its own.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

// Page geometry shared by every sheet.
const (
	PageSize    = "A4"
	Orientation = "L"
	Unit        = "mm"
	Margin      = 10.0
	RowHeight   = 8.0
	FontFamily  = "Helvetica"
	FontSize    = 10.0

	// IdentifierShare is the fraction of the usable width given to column 0.
	// The remaining width is split evenly between the day columns.
	IdentifierShare = 0.34
)

const (
	title    = "Attendance sign-in sheet"
	creator  = "rollcall"
	ellipsis = "..."

	// missingGlyph stands in for characters the core fonts cannot encode.
	missingGlyph = "?"
)

// PDFRenderer renders sign-in sheets with fpdf's core fonts.
type PDFRenderer struct {
	now      func() time.Time
	compress bool
}

// NewPDFRenderer returns a renderer that stamps documents with the time from
// now. Pass time.Now in production; a fixed clock makes output byte-stable.
func NewPDFRenderer(now func() time.Time) *PDFRenderer {
	if now == nil {
		now = time.Now
	}
	return &PDFRenderer{now: now, compress: true}
}

// Render validates doc and draws it. Spans on row 0 become one wide cell
// showing the first cell's text; alignment, bold, and grid lines follow the
// document's style rules. A malformed document returns an error wrapping
// domain.ErrMalformedDocument before any drawing happens.
func (r *PDFRenderer) Render(doc domain.TableDocument) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("render.PDFRenderer.Render: %w", err)
	}

	pdf := newDocument()
	pdf.SetCompression(r.compress)
	pdf.SetTitle(title, false)
	pdf.SetCreator(creator, false)
	stamp := r.now()
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	// fpdf keeps fonts in maps; sorting the catalog keeps output stable.
	pdf.SetCatalogSort(true)

	g := geometryOf(pdf)
	widths := columnWidths(g.usableWidth, doc.Columns())
	tr := glyphTranslator(pdf)

	for _, page := range paginate(doc.DataRows(), g.rowsPerPage) {
		pdf.AddPage()
		for row := 0; row < domain.HeaderRows; row++ {
			drawRow(pdf, tr, doc, row, widths)
		}
		for i := page.first; i < page.last; i++ {
			drawRow(pdf, tr, doc, domain.HeaderRows+i, widths)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render.PDFRenderer.Render: output: %w", err)
	}
	return buf.Bytes(), nil
}

// RowsPerPage reports how many data rows fit below the repeated headers.
func RowsPerPage() int {
	return geometryOf(newDocument()).rowsPerPage
}

// PageCount reports how many pages a document with dataRows data rows spans.
func PageCount(dataRows int) int {
	return len(paginate(dataRows, RowsPerPage()))
}

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New(Orientation, Unit, PageSize, "")
	pdf.SetMargins(Margin, Margin, Margin)
	pdf.SetAutoPageBreak(false, Margin)
	return pdf
}

type geometry struct {
	usableWidth float64
	rowsPerPage int
}

func geometryOf(pdf *fpdf.Fpdf) geometry {
	w, h := pdf.GetPageSize()
	bodyHeight := h - 2*Margin - float64(domain.HeaderRows)*RowHeight
	return geometry{
		usableWidth: w - 2*Margin,
		rowsPerPage: int(bodyHeight / RowHeight),
	}
}

// pageRange is a half-open range of data row indices.
type pageRange struct {
	first, last int
}

// paginate splits dataRows into pages of at most perPage rows. A document
// with no data rows still gets one page so the headers are printed.
func paginate(dataRows, perPage int) []pageRange {
	if perPage < 1 {
		perPage = 1
	}
	if dataRows == 0 {
		return []pageRange{{0, 0}}
	}
	pages := make([]pageRange, 0, (dataRows+perPage-1)/perPage)
	for first := 0; first < dataRows; first += perPage {
		pages = append(pages, pageRange{first: first, last: min(first+perPage, dataRows)})
	}
	return pages
}

func columnWidths(usable float64, cols int) []float64 {
	widths := make([]float64, cols)
	if cols == 1 {
		widths[0] = usable
		return widths
	}
	widths[0] = usable * IdentifierShare
	rest := (usable - widths[0]) / float64(cols-1)
	for i := 1; i < cols; i++ {
		widths[i] = rest
	}
	return widths
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, doc domain.TableDocument, row int, widths []float64) {
	cells := doc.Rows[row]
	for col := 0; col < len(cells); {
		st := doc.StyleAt(row, col)
		w := widths[col]
		next := col + 1
		if span, ok := doc.SpanAt(row, col); ok {
			for c := col + 1; c <= span.LastCol; c++ {
				w += widths[c]
			}
			next = span.LastCol + 1
		}

		fontStyle := ""
		if st.Bold {
			fontStyle = "B"
		}
		pdf.SetFont(FontFamily, fontStyle, FontSize)

		border := ""
		if st.Grid {
			border = "1"
		}
		text := fitText(pdf, tr, cells[col], w-2*pdf.GetCellMargin())
		pdf.CellFormat(w, RowHeight, text, border, 0, alignOf(st.Align), false, 0, "")
		col = next
	}
	pdf.Ln(RowHeight)
}

// glyphTranslator converts UTF-8 text to the cp1252 bytes the core fonts
// draw. Runes outside cp1252 become missingGlyph.
func glyphTranslator(pdf *fpdf.Fpdf) func(string) string {
	cp1252 := pdf.UnicodeTranslatorFromDescriptor("")
	return func(s string) string {
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			if r < utf8.RuneSelf {
				b.WriteRune(r)
				continue
			}
			// fpdf maps unknown runes to '.'; no non-ASCII rune encodes as '.'.
			g := cp1252(string(r))
			if g == "." {
				g = missingGlyph
			}
			b.WriteString(g)
		}
		return b.String()
	}
}

// fitText translates s with tr and shortens it with a trailing ellipsis until
// it fits in width. Truncation happens on the UTF-8 source, one rune at a
// time, so a cut never splits a character.
func fitText(pdf *fpdf.Fpdf, tr func(string) string, s string, width float64) string {
	text := tr(s)
	if pdf.GetStringWidth(text) <= width {
		return text
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := tr(string(runes)) + ellipsis
		if pdf.GetStringWidth(candidate) <= width {
			return candidate
		}
	}
	return ""
}

func alignOf(a domain.Alignment) string {
	switch a {
	case domain.AlignLeft:
		return "LM"
	case domain.AlignRight:
		return "RM"
	default:
		return "CM"
	}
}
