// Package pdfscan reads the text layer of payslip PDFs with
// github.com/ledongthuc/pdf. Only embedded text is extracted; scanned
// (image-only) documents yield no fragments and fail extraction upstream.
package pdfscan

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
)

// pageStride separates the vertical coordinates of consecutive pages so
// that multi-page documents still read top to bottom. Payslips are
// single-page in practice; the stride just keeps the invariant for the
// odd two-page document.
const pageStride = 100000.0

// Ensure Scanner implements the interface.
var _ driven.PageScanner = (*Scanner)(nil)

// Scanner implements driven.PageScanner.
type Scanner struct{}

// Scan returns every positioned text fragment of the document. PDF user
// space puts the origin at the bottom-left, so the Y coordinate is
// negated: fragments on the same printed line keep an identical vertical
// key, and larger values sit lower on the page.
func (Scanner) Scan(ctx context.Context, path string) ([]domain.TextFragment, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var fragments []domain.TextFragment
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, t := range p.Content().Text {
			fragments = append(fragments, domain.TextFragment{
				Text:       t.S,
				Vertical:   float64(i)*pageStride - t.Y,
				Horizontal: t.X,
			})
		}
	}
	return fragments, nil
}
