package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driving"
	"github.com/aruiz-labs/nominas-cli/internal/extract"
	"github.com/aruiz-labs/nominas-cli/internal/logger"
)

// Ensure ImporterService implements the interface.
var _ driving.Importer = (*ImporterService)(nil)

// ImporterService runs the payslip batch pipeline. Files are processed
// sequentially in sorted name order; each file owns its Payslip
// exclusively, so no shared state is mutated across files.
type ImporterService struct {
	source  driven.PayrollSource
	scanner driven.PageScanner
	files   driven.FileStore
	records driven.RecordStore
	ledger  driven.RunLedger
	company string
	years   []string
}

// NewImporterService wires the pipeline. files, records and ledger may be
// nil for dry runs; Import never touches them when opts.DryRun is set.
func NewImporterService(
	source driven.PayrollSource,
	scanner driven.PageScanner,
	files driven.FileStore,
	records driven.RecordStore,
	ledger driven.RunLedger,
	company string,
	years []string,
) *ImporterService {
	return &ImporterService{
		source:  source,
		scanner: scanner,
		files:   files,
		records: records,
		ledger:  ledger,
		company: company,
		years:   years,
	}
}

// Import processes every payslip in the folder. See driving.Importer for
// the error contract.
func (s *ImporterService) Import(ctx context.Context, opts driving.ImportOptions) (*driving.ImportReport, error) {
	names, err := s.source.List(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("listing payroll folder %s: %w", opts.Dir, err)
	}

	report := &driving.ImportReport{RunID: uuid.NewString()}
	logger.Info("run %s: %d candidate files in %s", report.RunID, len(names), opts.Dir)

	// Year folders are resolved once per year, not once per file.
	folderIDs := make(map[string]string)

	for seq, name := range names {
		p := &domain.Payslip{
			Sequence: seq + 1,
			FileName: name,
			FilePath: filepath.Join(opts.Dir, name),
			Company:  s.company,
		}

		result, fatal := s.processFile(ctx, p, folderIDs, opts.DryRun)
		report.Files = append(report.Files, result)

		if !opts.DryRun && s.ledger != nil {
			if err := s.ledger.Record(ctx, runEntry(report.RunID, p, result)); err != nil {
				logger.Warn("%s: ledger write failed: %v", name, err)
			}
		}

		if fatal != nil {
			return report, fatal
		}
	}

	ok, skipped, failed := report.Counts()
	logger.Info("run %s finished: %d ok, %d skipped, %d failed", report.RunID, ok, skipped, failed)
	return report, nil
}

// processFile runs the whole pipeline for one file. The returned error is
// non-nil only for run-fatal conditions; per-file failures land in the
// result.
func (s *ImporterService) processFile(
	ctx context.Context, p *domain.Payslip, folderIDs map[string]string, dryRun bool,
) (driving.FileResult, error) {
	fail := func(outcome domain.Outcome, err error) driving.FileResult {
		logger.Error("%s: %v", p.FileName, err)
		return driving.FileResult{
			Sequence: p.Sequence, FileName: p.FileName, Name: p.Name,
			Outcome: outcome, Err: err,
		}
	}

	logger.Debug("processing %s (#%d)", p.FileName, p.Sequence)

	if !s.yearAllowed(p.FileName) {
		logger.Info("%s: no configured year in name, skipped", p.FileName)
		return driving.FileResult{
			Sequence: p.Sequence, FileName: p.FileName, Outcome: domain.OutcomeSkipped,
		}, nil
	}

	if err := domain.DeriveIdentity(p); err != nil {
		return fail(domain.OutcomeFormatError, err), nil
	}

	if err := s.extractAmounts(ctx, p); err != nil {
		return fail(domain.OutcomeExtractionError, err), nil
	}

	// Show the extracted values before any remote write, so a downstream
	// failure never hides them.
	logger.Info("%s: %s gross=%.2f deductions=%.2f net=%.2f",
		p.FileName, p.Name, deref(p.Gross), deref(p.Deductions), deref(p.Net))
	if !p.Consistent() {
		gap, _ := p.ConsistencyGap()
		logger.Warn("%s: net differs from gross-deductions by %.2f", p.FileName, gap)
	}

	if dryRun {
		return driving.FileResult{
			Sequence: p.Sequence, FileName: p.FileName, Name: p.Name, Outcome: domain.OutcomeOK,
		}, nil
	}

	if len(s.years) > 0 && !slices.Contains(s.years, p.Year()) {
		err := fmt.Errorf("%w: %s", domain.ErrYearNotDeclared, p.Year())
		return fail(domain.OutcomeMissingPrerequisite, err), nil
	}

	folderID, ok := folderIDs[p.Year()]
	if !ok {
		var err error
		folderID, err = s.files.EnsureFolder(ctx, p.Year())
		if err != nil {
			if errors.Is(err, domain.ErrFolderAmbiguous) {
				// Picking one of several matching folders would scatter
				// uploads; abort the whole run.
				return fail(domain.OutcomeUploadError, err), err
			}
			return fail(domain.OutcomeUploadError, err), nil
		}
		folderIDs[p.Year()] = folderID
	}

	fileID, err := s.files.Upload(ctx, folderID, p.FilePath, p.FileName)
	if err != nil {
		return fail(domain.OutcomeUploadError, fmt.Errorf("upload %s: %w", p.FileName, err)), nil
	}
	p.StorageID = fileID
	p.ViewURL = s.files.ViewURL(fileID)
	logger.Debug("%s: uploaded as %s", p.FileName, fileID)

	if err := s.records.CreateRecord(ctx, p); err != nil {
		return fail(domain.OutcomeStoredNotRecorded, err), nil
	}

	return driving.FileResult{
		Sequence: p.Sequence, FileName: p.FileName, Name: p.Name, Outcome: domain.OutcomeOK,
	}, nil
}

// extractAmounts drains the document scan, reconstructs rows and pulls
// the three amounts into the payslip.
func (s *ImporterService) extractAmounts(ctx context.Context, p *domain.Payslip) error {
	fragments, err := s.scanner.Scan(ctx, p.FilePath)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", p.FileName, err)
	}

	builder := extract.NewRowBuilder()
	for _, f := range fragments {
		builder.Add(f)
	}

	amounts, err := extract.ExtractAmounts(builder.Rows())
	if err != nil {
		return fmt.Errorf("%s: %w", p.FileName, err)
	}

	p.Gross = amounts.Gross
	p.Deductions = amounts.Deductions
	p.Net = amounts.Net
	return nil
}

// yearAllowed applies the configured allowlist: a file is processed when
// its name contains one of the configured year strings. An empty
// allowlist admits everything.
func (s *ImporterService) yearAllowed(fileName string) bool {
	if len(s.years) == 0 {
		return true
	}
	for _, y := range s.years {
		if strings.Contains(fileName, y) {
			return true
		}
	}
	return false
}

func runEntry(runID string, p *domain.Payslip, r driving.FileResult) domain.RunEntry {
	detail := ""
	if r.Err != nil {
		detail = r.Err.Error()
	}
	return domain.RunEntry{
		RunID:      runID,
		Sequence:   p.Sequence,
		FileName:   p.FileName,
		Outcome:    r.Outcome,
		Gross:      p.Gross,
		Deductions: p.Deductions,
		Net:        p.Net,
		StorageID:  p.StorageID,
		Detail:     detail,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
