package extract

import (
	"sort"
	"strings"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// RowBuilder groups positioned text fragments into visual rows.
//
// Fragments may arrive in any order: nothing guarantees that all pieces
// of one printed line arrive together, or that lines arrive top to
// bottom. The builder therefore keys fragments by their exact vertical
// coordinate and only orders them once the whole stream has been
// consumed. Fragments on the same printed line share an identical
// emitted coordinate, so no tolerance clustering is needed.
type RowBuilder struct {
	lines map[float64][]domain.TextFragment
}

// NewRowBuilder returns an empty builder.
func NewRowBuilder() *RowBuilder {
	return &RowBuilder{lines: make(map[float64][]domain.TextFragment)}
}

// Add accumulates one fragment. Fragments that are empty after trimming
// carry no text worth keeping and are dropped.
func (b *RowBuilder) Add(f domain.TextFragment) {
	text := strings.TrimSpace(f.Text)
	if text == "" {
		return
	}
	f.Text = text
	b.lines[f.Vertical] = append(b.lines[f.Vertical], f)
}

// Rows returns the reconstructed rows ordered top to bottom (ascending
// vertical coordinate), each row's fragments ordered left to right. An
// empty builder yields an empty row set; whether that is an error is the
// caller's call.
func (b *RowBuilder) Rows() []domain.Row {
	keys := make([]float64, 0, len(b.lines))
	for k := range b.lines {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	rows := make([]domain.Row, 0, len(keys))
	for _, k := range keys {
		frags := b.lines[k]
		sort.SliceStable(frags, func(i, j int) bool {
			return frags[i].Horizontal < frags[j].Horizontal
		})

		row := make(domain.Row, len(frags))
		for i, f := range frags {
			row[i] = f.Text
		}
		rows = append(rows, row)
	}
	return rows
}
