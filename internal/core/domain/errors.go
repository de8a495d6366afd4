package domain

import "errors"

// Domain errors represent failures in the import pipeline.
// Per-file errors are isolated by the orchestrator; configuration and
// ambiguity errors abort the whole run.
var (
	// ErrFileNameFormat indicates a payslip file name does not match the
	// expected "YYYY-MM[-extra].pdf" pattern. Fatal to that file only.
	ErrFileNameFormat = errors.New("file name does not match payslip pattern")

	// ErrUnknownMonth indicates a month code outside 01..12.
	ErrUnknownMonth = errors.New("unknown month code")

	// ErrAmountFormat indicates an amount token that is not a
	// Spanish-formatted decimal. Fatal to that file only.
	ErrAmountFormat = errors.New("malformed amount")

	// ErrExtractionIncomplete indicates the document scan finished without
	// ever locating the net amount row. Fatal to that file only.
	ErrExtractionIncomplete = errors.New("net amount not found in document")

	// ErrFolderAmbiguous indicates more than one storage folder matched a
	// year name. Continuing would pick one silently, so this aborts the run.
	ErrFolderAmbiguous = errors.New("multiple folders match")

	// ErrYearNotDeclared indicates a file references a year that is not in
	// the configured allowlist, so its destination folder must not be
	// auto-created. Fatal to that file only.
	ErrYearNotDeclared = errors.New("year not declared in configuration")

	// ErrRecordCreate indicates the destination database rejected a record.
	// The file stays uploaded but unrecorded; the run ledger keeps it
	// visible for manual reconciliation.
	ErrRecordCreate = errors.New("record creation failed")
)
