package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	configfile "github.com/aruiz-labs/nominas-cli/internal/adapters/driven/config/file"
	"github.com/aruiz-labs/nominas-cli/internal/adapters/driven/runlog/sqlite"
	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

var ledgerRunID string

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect the local run ledger",
	Long: `Reads the local run ledger. Without flags it lists the files that
were uploaded to Drive but never recorded in the database; those need
manual reconciliation. With --run it lists every entry of that run.`,
	RunE: runLedger,
}

func init() {
	ledgerCmd.Flags().StringVar(&ledgerRunID, "run", "",
		"list every entry of this run id instead of the unreconciled files")
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening run ledger: %w", err)
	}
	defer store.Close()

	var entries []domain.RunEntry
	if ledgerRunID != "" {
		entries, err = store.Entries(ctx, ledgerRunID)
	} else {
		entries, err = store.Unreconciled(ctx)
	}
	if err != nil {
		return err
	}

	cmd.Print(renderEntries(entries, ledgerRunID, store.Path()))
	return nil
}

// renderEntries formats ledger entries: one line per file, then a count.
// An empty unreconciled list is the healthy case and says so.
func renderEntries(entries []domain.RunEntry, runID, path string) string {
	var b strings.Builder

	switch {
	case runID != "":
		b.WriteString(headerStyle.Render("Run " + runID))
	default:
		b.WriteString(headerStyle.Render("Stored but not recorded"))
	}
	b.WriteString("\n")

	if len(entries) == 0 {
		if runID != "" {
			b.WriteString(dimStyle.Render("no entries for this run"))
		} else {
			b.WriteString(dimStyle.Render("nothing to reconcile"))
		}
		b.WriteString("\n")
		return b.String()
	}

	for _, e := range entries {
		b.WriteString(renderEntryLine(e, runID == ""))
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("%d entries (ledger at %s)", len(entries), path)))
	b.WriteString("\n")
	return b.String()
}

func renderEntryLine(e domain.RunEntry, showRun bool) string {
	var status string
	if e.Outcome.Failed() {
		status = errStyle.Render(string(e.Outcome))
	} else {
		status = okStyle.Render(string(e.Outcome))
	}

	line := fmt.Sprintf("  %3d  %-24s %s", e.Sequence, e.FileName, status)
	if e.Net != nil {
		line += fmt.Sprintf("  net=%.2f", *e.Net)
	}
	if e.StorageID != "" {
		line += "  drive:" + e.StorageID
	}
	if showRun {
		line += dimStyle.Render("  run " + e.RunID)
	}
	if e.Detail != "" {
		line += dimStyle.Render("  " + e.Detail)
	}
	return line
}
