package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/aruiz-labs/nominas-cli/internal/adapters/driven/config/file"
	"github.com/aruiz-labs/nominas-cli/internal/adapters/driven/pdfscan"
	"github.com/aruiz-labs/nominas-cli/internal/adapters/driven/runlog/sqlite"
	"github.com/aruiz-labs/nominas-cli/internal/connectors/filesystem"
	"github.com/aruiz-labs/nominas-cli/internal/connectors/google"
	"github.com/aruiz-labs/nominas-cli/internal/connectors/google/drive"
	"github.com/aruiz-labs/nominas-cli/internal/connectors/notion"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driven"
	"github.com/aruiz-labs/nominas-cli/internal/core/ports/driving"
	"github.com/aruiz-labs/nominas-cli/internal/core/services"
)

var (
	importDir string
	dryRun    bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Run the payslip batch import",
	Long: `Processes every payslip PDF in the payroll folder: derives name and
date from the file name, extracts gross, deductions and net from the
document text, uploads the file to the year's Drive folder and records
a row in the Notion database. Per-file failures never stop the batch.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "",
		"payroll folder (defaults to the configured payroll_dir)")
	importCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"derive and extract only; skip Drive, Notion and the run ledger")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return err
	}

	dir := importDir
	if dir == "" {
		dir = cfg.PayrollDir
	}

	var (
		files   driven.FileStore
		records driven.RecordStore
		ledger  driven.RunLedger
	)
	if !dryRun {
		if err := cfg.Validate(); err != nil {
			return err
		}

		svc, err := google.NewDriveService(ctx, google.Credentials{
			CredentialsFile: cfg.Google.CredentialsFile,
			ClientID:        cfg.Google.ClientID,
			ClientSecret:    cfg.Google.ClientSecret,
			RefreshToken:    cfg.Google.RefreshToken,
		})
		if err != nil {
			return fmt.Errorf("creating Drive client: %w", err)
		}
		files = drive.NewStore(svc, cfg.Google.ParentFolderID)

		records = notion.NewClient(cfg.Notion.Token, cfg.Notion.DatabaseID)

		store, err := sqlite.NewStore(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("opening run ledger: %w", err)
		}
		defer store.Close()
		ledger = store
	}

	importer := services.NewImporterService(
		filesystem.Lister{}, pdfscan.Scanner{},
		files, records, ledger,
		cfg.Company, cfg.Years,
	)

	report, runErr := importer.Import(ctx, driving.ImportOptions{Dir: dir, DryRun: dryRun})
	if report != nil {
		cmd.Print(renderReport(report, dryRun))
	}
	return runErr
}
