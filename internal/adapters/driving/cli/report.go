package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driving"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// renderReport formats the end-of-run summary: one line per file with
// its outcome, then the totals.
func renderReport(r *driving.ImportReport, dryRun bool) string {
	var b strings.Builder

	title := fmt.Sprintf("Import run %s", r.RunID)
	if dryRun {
		title += " (dry run)"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")

	for _, f := range r.Files {
		b.WriteString(renderFileLine(f))
		b.WriteString("\n")
	}

	ok, skipped, failed := r.Counts()
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"%d processed: %d ok, %d skipped, %d failed",
		len(r.Files), ok, skipped, failed)))
	b.WriteString("\n")
	return b.String()
}

func renderFileLine(f driving.FileResult) string {
	var status string
	switch {
	case f.Outcome.Failed():
		status = errStyle.Render(string(f.Outcome))
	case f.Outcome == domain.OutcomeSkipped:
		status = skipStyle.Render(string(f.Outcome))
	default:
		status = okStyle.Render(string(f.Outcome))
	}

	line := fmt.Sprintf("  %3d  %-24s %s", f.Sequence, f.FileName, status)
	if f.Err != nil {
		line += dimStyle.Render("  " + f.Err.Error())
	}
	return line
}
