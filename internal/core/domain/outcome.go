package domain

// Outcome classifies what happened to one file during a run.
type Outcome string

const (
	// OutcomeOK means the file was extracted, stored and recorded.
	OutcomeOK Outcome = "ok"

	// OutcomeSkipped means the file was filtered out by the year allowlist.
	OutcomeSkipped Outcome = "skipped"

	// OutcomeFormatError means the file name did not match the payslip
	// pattern or carried an unknown month code.
	OutcomeFormatError Outcome = "format_error"

	// OutcomeExtractionError means the document scan failed or finished
	// without the required amounts.
	OutcomeExtractionError Outcome = "extraction_error"

	// OutcomeMissingPrerequisite means the file referenced a year whose
	// destination folder may not be auto-created.
	OutcomeMissingPrerequisite Outcome = "missing_prerequisite"

	// OutcomeUploadError means the cloud storage upload failed.
	OutcomeUploadError Outcome = "upload_error"

	// OutcomeStoredNotRecorded means the file was uploaded but the
	// destination database rejected its record. Needs manual reconciliation.
	OutcomeStoredNotRecorded Outcome = "stored_not_recorded"
)

// Failed reports whether the outcome describes a per-file failure.
func (o Outcome) Failed() bool {
	switch o {
	case OutcomeOK, OutcomeSkipped:
		return false
	}
	return true
}

// RunEntry is one line of the local run ledger: the durable trace of what
// happened to a single file in a single run.
type RunEntry struct {
	RunID      string
	Sequence   int
	FileName   string
	Outcome    Outcome
	Gross      *float64
	Deductions *float64
	Net        *float64
	StorageID  string
	// Detail carries the error text for failed outcomes.
	Detail string
}
