package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/rollcall/backend/internal/domain"
)

func TestNewSheetSpec_CopiesRoster(t *testing.T) {
	roster := []string{"a@x.com", "b@x.com"}

	spec, err := domain.NewSheetSpec(roster, 3)
	require.NoError(t, err)
	roster[0] = "changed"

	assert.Equal(t, []string{"a@x.com", "b@x.com"}, spec.Roster())
	assert.Equal(t, 3, spec.Days())
	assert.Equal(t, 7, spec.Columns())

	out := spec.Roster()
	out[1] = "changed"
	assert.Equal(t, "b@x.com", spec.Roster()[1], "Roster returns a copy")
}

func TestValidateDays(t *testing.T) {
	for days := domain.MinDays; days <= domain.MaxDays; days++ {
		assert.NoError(t, domain.ValidateDays(days))
	}
	for _, days := range []int{-3, 0, 7, 42} {
		err := domain.ValidateDays(days)
		assert.ErrorIs(t, err, domain.ErrInvalidRange)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCellRange_Contains(t *testing.T) {
	all := domain.CellRange{FirstRow: 0, LastRow: domain.ToEnd, FirstCol: 0, LastCol: domain.ToEnd}
	assert.True(t, all.Contains(0, 0, 4, 5))
	assert.True(t, all.Contains(3, 4, 4, 5))
	assert.False(t, all.Contains(4, 0, 4, 5))

	col0FromRow2 := domain.CellRange{FirstRow: 2, LastRow: domain.ToEnd, FirstCol: 0, LastCol: 0}
	assert.False(t, col0FromRow2.Contains(1, 0, 4, 5))
	assert.True(t, col0FromRow2.Contains(2, 0, 4, 5))
	assert.False(t, col0FromRow2.Contains(2, 1, 4, 5))
}

func TestTableDocument_StyleAt_LaterRulesOverride(t *testing.T) {
	doc := domain.TableDocument{
		Rows: [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}},
		Styles: []domain.StyleRule{
			{Range: domain.CellRange{LastRow: domain.ToEnd, LastCol: domain.ToEnd}, Align: domain.AlignCenter, Grid: true},
			{Range: domain.CellRange{FirstRow: 2, LastRow: 2, FirstCol: 0, LastCol: 0}, Align: domain.AlignLeft},
		},
	}

	assert.Equal(t, domain.CellStyle{Align: domain.AlignCenter, Grid: true}, doc.StyleAt(0, 0))
	assert.Equal(t, domain.CellStyle{Align: domain.AlignLeft, Grid: true}, doc.StyleAt(2, 0))
	assert.Equal(t, domain.CellStyle{Align: domain.AlignCenter, Grid: true}, doc.StyleAt(2, 1))
}

func TestTableDocument_Validate(t *testing.T) {
	ok := domain.TableDocument{
		Rows:  [][]string{{"Email", "Day 1", ""}, {"", "Time In", "Sign"}},
		Spans: []domain.Span{{Row: 0, FirstCol: 1, LastCol: 2}},
	}
	require.NoError(t, ok.Validate())
	assert.Equal(t, 3, ok.Columns())
	assert.Equal(t, 0, ok.DataRows())

	ragged := ok
	ragged.Rows = [][]string{{"Email", "Day 1", ""}, {"", "Time In"}}
	assert.ErrorIs(t, ragged.Validate(), domain.ErrMalformedDocument)

	offRow := ok
	offRow.Spans = []domain.Span{{Row: 1, FirstCol: 1, LastCol: 2}}
	assert.ErrorIs(t, offRow.Validate(), domain.ErrMalformedDocument)

	noCells := domain.TableDocument{Rows: [][]string{{}, {}}}
	assert.ErrorIs(t, noCells.Validate(), domain.ErrMalformedDocument)
}
