package domain

import "math"

// AmountTolerance bounds the accepted drift when checking that the net
// amount equals gross minus deductions. Payslips round line items, so an
// exact float comparison would reject valid documents.
const AmountTolerance = 0.01

// Payslip represents one payroll document moving through the import
// pipeline. It is created when the file is picked up, filled in by
// derivation and extraction, and handed read-only to the upload and
// record collaborators.
type Payslip struct {
	// Sequence is the 1-based position within the batch.
	Sequence int

	// FileName is the bare source file name, e.g. "2023-04.pdf".
	FileName string

	// FilePath is the full path of the source file.
	FilePath string

	// Name is the display name derived from the file name,
	// e.g. "2023 Abril" or "2023 Julio Extra".
	Name string

	// Date is the payment date in ISO form. The day is always 25, a
	// payroll convention rather than an observed date.
	Date string

	// Extra marks a supplementary, non-monthly payment.
	Extra bool

	// Company is the employer label from configuration.
	Company string

	// Gross, Deductions and Net are the amounts extracted from the
	// document text. Nil until extraction sets them.
	Gross      *float64
	Deductions *float64
	Net        *float64

	// StorageID identifies the uploaded copy in cloud storage.
	StorageID string

	// ViewURL is the user-facing link to the uploaded copy.
	ViewURL string
}

// Year returns the four-digit year of the payment date. Empty until
// DeriveIdentity has run.
func (p *Payslip) Year() string {
	if len(p.Date) < 4 {
		return ""
	}
	return p.Date[:4]
}

// Complete reports whether all three amounts have been extracted.
func (p *Payslip) Complete() bool {
	return p.Gross != nil && p.Deductions != nil && p.Net != nil
}

// ConsistencyGap returns the absolute difference between the net amount
// and gross minus deductions. The second return is false when any of the
// three amounts is still unset, in which case the gap is meaningless.
func (p *Payslip) ConsistencyGap() (float64, bool) {
	if !p.Complete() {
		return 0, false
	}
	return math.Abs(*p.Net - (*p.Gross - *p.Deductions)), true
}

// Consistent reports whether net matches gross minus deductions within
// AmountTolerance. Incomplete payslips are vacuously consistent.
func (p *Payslip) Consistent() bool {
	gap, ok := p.ConsistencyGap()
	return !ok || gap <= AmountTolerance
}
