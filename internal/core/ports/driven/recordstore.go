package driven

import (
	"context"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// RecordStore is the destination database collaborator. One record is
// created per payslip with the fixed field mapping: title, payment date,
// company, file link and the three amounts.
type RecordStore interface {
	// CreateRecord writes one payslip row. Failures wrap
	// domain.ErrRecordCreate and must not abort the batch.
	CreateRecord(ctx context.Context, p *domain.Payslip) error
}
