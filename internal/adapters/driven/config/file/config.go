// Package file loads the importer's configuration: a TOML file merged
// with environment variables, assembled once into an immutable value
// that is passed to whichever constructor needs it. Core logic never
// reads configuration ambiently.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config is the immutable run configuration.
type Config struct {
	// PayrollDir is the folder holding the payslip PDFs.
	PayrollDir string `toml:"payroll_dir"`

	// Company is the employer label written into every record.
	Company string `toml:"company"`

	// Years is the optional allowlist of year strings; empty admits all.
	Years []string `toml:"years"`

	// DataDir holds the local run ledger. Empty means ~/.nominas/data.
	DataDir string `toml:"data_dir"`

	Google GoogleConfig `toml:"google"`
	Notion NotionConfig `toml:"notion"`
}

// GoogleConfig configures the Drive collaborator.
type GoogleConfig struct {
	// CredentialsFile is a service-account key file. When set it takes
	// precedence over the refresh-token triple.
	CredentialsFile string `toml:"credentials_file"`
	ClientID        string `toml:"client_id"`
	ClientSecret    string `toml:"client_secret"`
	RefreshToken    string `toml:"refresh_token"`

	// ParentFolderID is the Drive folder holding one subfolder per year.
	ParentFolderID string `toml:"parent_folder_id"`
}

// NotionConfig configures the destination database collaborator.
type NotionConfig struct {
	Token      string `toml:"token"`
	DatabaseID string `toml:"database_id"`
}

// DefaultPath returns the default config file location,
// ~/.nominas/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".nominas", "config.toml"), nil
}

// Load reads the TOML file at path (the default location when path is
// empty; a missing file is fine) and applies environment overrides. A
// .env file in the working directory is loaded into the environment
// first when present.
func Load(path string) (*Config, error) {
	// Ignore the error: a missing .env just means plain environment.
	_ = godotenv.Load()

	cfg := &Config{PayrollDir: "payrolls"}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Environment-only configuration is acceptable.
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides file values with environment variables. NOTION_KEY,
// NOTION_DEST_DATABASE_ID and COMPANY keep the names the original .env
// setups used; the rest are prefixed.
func applyEnv(cfg *Config) {
	setString(&cfg.PayrollDir, "NOMINAS_PAYROLL_DIR")
	setString(&cfg.Company, "COMPANY")
	setString(&cfg.DataDir, "NOMINAS_DATA_DIR")

	if v := os.Getenv("NOMINAS_YEARS"); v != "" {
		cfg.Years = splitYears(v)
	}

	setString(&cfg.Google.CredentialsFile, "GOOGLE_CREDENTIALS_FILE")
	setString(&cfg.Google.ClientID, "GOOGLE_CLIENT_ID")
	setString(&cfg.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setString(&cfg.Google.RefreshToken, "GOOGLE_REFRESH_TOKEN")
	setString(&cfg.Google.ParentFolderID, "GOOGLE_PARENT_FOLDER_ID")

	setString(&cfg.Notion.Token, "NOTION_KEY")
	setString(&cfg.Notion.DatabaseID, "NOTION_DEST_DATABASE_ID")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// splitYears parses the comma-separated allowlist, dropping empty items.
func splitYears(v string) []string {
	var years []string
	for _, part := range strings.Split(v, ",") {
		if year := strings.TrimSpace(part); year != "" {
			years = append(years, year)
		}
	}
	return years
}

// Validate checks that everything an import run needs is present.
// Dry runs only need the payroll folder, so validation is separate from
// loading.
func (c *Config) Validate() error {
	var missing []string
	if c.Company == "" {
		missing = append(missing, "company")
	}
	if c.Google.ParentFolderID == "" {
		missing = append(missing, "google.parent_folder_id")
	}
	if c.Google.CredentialsFile == "" && c.Google.RefreshToken == "" {
		missing = append(missing, "google credentials")
	}
	if c.Notion.Token == "" {
		missing = append(missing, "notion.token")
	}
	if c.Notion.DatabaseID == "" {
		missing = append(missing, "notion.database_id")
	}

	if len(missing) > 0 {
		return fmt.Errorf("incomplete configuration, missing: %s", strings.Join(missing, ", "))
	}
	return nil
}
