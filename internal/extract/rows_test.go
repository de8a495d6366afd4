package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

func frag(text string, y, x float64) domain.TextFragment {
	return domain.TextFragment{Text: text, Vertical: y, Horizontal: x}
}

func TestRowBuilderReconstructsOrderedRows(t *testing.T) {
	b := NewRowBuilder()
	for _, f := range []domain.TextFragment{
		frag("A.", 10, 0),
		frag("TOTAL", 10, 5),
		frag("DEVENGADO", 10, 15),
		frag("2.345,67", 10, 40),
		frag("B.", 20, 0),
		frag("TOTAL", 20, 5),
		frag("A", 20, 12),
		frag("DEDUCIR", 20, 15),
		frag("400,00", 20, 40),
	} {
		b.Add(f)
	}

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "A. TOTAL DEVENGADO 2.345,67", rows[0].Text())
	assert.Equal(t, "B. TOTAL A DEDUCIR 400,00", rows[1].Text())
}

func TestRowBuilderHandlesOutOfOrderDelivery(t *testing.T) {
	// Fragments of one line interleaved with another line, lines emitted
	// bottom-first. The builder must still yield top-to-bottom rows with
	// left-to-right fragments.
	b := NewRowBuilder()
	for _, f := range []domain.TextFragment{
		frag("second", 30, 0),
		frag("first", 12.5, 10),
		frag("line", 30, 20),
		frag("the", 12.5, 0),
		frag("row", 12.5, 20),
	} {
		b.Add(f)
	}

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "the first row", rows[0].Text())
	assert.Equal(t, "second line", rows[1].Text())
}

func TestRowBuilderUsesExactKeyMatching(t *testing.T) {
	// Nearby but unequal vertical positions are distinct rows: fragments
	// of one printed line share an identical coordinate in practice, so
	// no tolerance clustering is applied.
	b := NewRowBuilder()
	b.Add(frag("upper", 10.0, 0))
	b.Add(frag("lower", 10.5, 0))

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "upper", rows[0].Text())
	assert.Equal(t, "lower", rows[1].Text())
}

func TestRowBuilderKeepsUnusualRows(t *testing.T) {
	// Single-fragment and many-fragment rows are retained; they are just
	// not useful to the extractor.
	b := NewRowBuilder()
	b.Add(frag("lonely", 1, 0))
	for i := 0; i < 5; i++ {
		b.Add(frag("x", 2, float64(i)))
	}

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], 1)
	assert.Len(t, rows[1], 5)
}

func TestRowBuilderDropsBlankFragments(t *testing.T) {
	b := NewRowBuilder()
	b.Add(frag("  ", 1, 0))
	b.Add(frag("", 1, 5))
	b.Add(frag("  text  ", 1, 10))

	rows := b.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "text", rows[0].Text())
}

func TestRowBuilderEmptyInput(t *testing.T) {
	assert.Empty(t, NewRowBuilder().Rows())
}
