package driven

import (
	"context"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// PageScanner reads the text layer of a payslip PDF and returns every
// positioned fragment of the document. Implementations normalise the
// vertical coordinate so that larger values sit lower on the page; the
// fragment order is otherwise unspecified. Scan blocks until the whole
// document has been read, so a returned fragment set is always complete.
type PageScanner interface {
	Scan(ctx context.Context, path string) ([]domain.TextFragment, error)
}
