package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driving"
)

func TestRenderReport(t *testing.T) {
	report := &driving.ImportReport{
		RunID: "run-1",
		Files: []driving.FileResult{
			{Sequence: 1, FileName: "2023-01.pdf", Name: "2023-01 Nomina Enero 2023", Outcome: domain.OutcomeOK},
			{Sequence: 2, FileName: "2022-05.pdf", Outcome: domain.OutcomeSkipped},
			{Sequence: 3, FileName: "notas.pdf", Outcome: domain.OutcomeFormatError, Err: errors.New("file name does not match payslip pattern")},
		},
	}

	out := renderReport(report, false)
	assert.Contains(t, out, "Import run run-1")
	assert.NotContains(t, out, "dry run")
	assert.Contains(t, out, "2023-01.pdf")
	assert.Contains(t, out, "format_error")
	assert.Contains(t, out, "does not match payslip pattern")
	assert.Contains(t, out, "3 processed: 1 ok, 1 skipped, 1 failed")
}

func TestRenderReportDryRun(t *testing.T) {
	report := &driving.ImportReport{RunID: "run-2"}
	out := renderReport(report, true)
	assert.Contains(t, out, "(dry run)")
	assert.Contains(t, out, "0 processed: 0 ok, 0 skipped, 0 failed")
}
