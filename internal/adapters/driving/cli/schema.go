package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	configfile "github.com/aruiz-labs/nominas-cli/internal/adapters/driven/config/file"
	"github.com/aruiz-labs/nominas-cli/internal/connectors/notion"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the destination database schema",
	Long: `Fetches the destination Notion database and prints its property
names and types. Useful for checking the database matches the columns
the importer writes.`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Notion.Token == "" || cfg.Notion.DatabaseID == "" {
		return errors.New("notion token and database_id are required")
	}

	client := notion.NewClient(cfg.Notion.Token, cfg.Notion.DatabaseID)
	schema, err := client.Schema(context.Background())
	if err != nil {
		return err
	}

	for _, name := range notion.SortedPropertyNames(schema) {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, schema[name])
	}
	return nil
}
