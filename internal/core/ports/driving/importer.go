// Package driving defines the interfaces through which the CLI drives
// the application core.
package driving

import (
	"context"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// ImportOptions control one batch run.
type ImportOptions struct {
	// Dir is the folder holding the payslip PDFs.
	Dir string

	// DryRun derives and extracts but skips every remote write and the
	// run ledger.
	DryRun bool
}

// FileResult describes the outcome for one file of the batch.
type FileResult struct {
	Sequence int
	FileName string
	// Name is the derived display name, empty when derivation failed.
	Name    string
	Outcome domain.Outcome
	Err     error
}

// ImportReport summarises a finished (or aborted) batch.
type ImportReport struct {
	RunID string
	Files []FileResult
}

// Counts returns how many files succeeded, were skipped and failed.
func (r *ImportReport) Counts() (ok, skipped, failed int) {
	for _, f := range r.Files {
		switch {
		case f.Outcome == domain.OutcomeSkipped:
			skipped++
		case f.Outcome.Failed():
			failed++
		default:
			ok++
		}
	}
	return ok, skipped, failed
}

// Importer runs the payslip batch pipeline.
type Importer interface {
	// Import processes every file in the folder sequentially. Per-file
	// failures are captured in the report; the returned error is non-nil
	// only for run-fatal conditions (the report still covers the files
	// processed before the abort).
	Import(ctx context.Context, opts ImportOptions) (*ImportReport, error)
}
