package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"NOMINAS_PAYROLL_DIR", "COMPANY", "NOMINAS_YEARS", "NOMINAS_DATA_DIR",
		"GOOGLE_CREDENTIALS_FILE", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"GOOGLE_REFRESH_TOKEN", "GOOGLE_PARENT_FOLDER_ID",
		"NOTION_KEY", "NOTION_DEST_DATABASE_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
payroll_dir = "slips"
company = "Ejemplo S.L."
years = ["2023", "2024"]

[google]
credentials_file = "/secrets/sa.json"
parent_folder_id = "parent-123"

[notion]
token = "secret_abc"
database_id = "db-456"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "slips", cfg.PayrollDir)
	assert.Equal(t, "Ejemplo S.L.", cfg.Company)
	assert.Equal(t, []string{"2023", "2024"}, cfg.Years)
	assert.Equal(t, "/secrets/sa.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "parent-123", cfg.Google.ParentFolderID)
	assert.Equal(t, "secret_abc", cfg.Notion.Token)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
company = "From File"
[notion]
token = "file_token"
`)

	t.Setenv("COMPANY", "From Env")
	t.Setenv("NOTION_KEY", "env_token")
	t.Setenv("NOMINAS_YEARS", "2022, 2023 ,")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "From Env", cfg.Company)
	assert.Equal(t, "env_token", cfg.Notion.Token)
	assert.Equal(t, []string{"2022", "2023"}, cfg.Years)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("COMPANY", "Env Only")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "Env Only", cfg.Company)
	// Defaults survive when neither file nor env set them.
	assert.Equal(t, "payrolls", cfg.PayrollDir)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `company = [unclosed`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateReportsEveryMissingField(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company")
	assert.Contains(t, err.Error(), "google.parent_folder_id")
	assert.Contains(t, err.Error(), "google credentials")
	assert.Contains(t, err.Error(), "notion.token")
	assert.Contains(t, err.Error(), "notion.database_id")
}

func TestValidateAcceptsRefreshTokenAuth(t *testing.T) {
	cfg := &Config{
		Company: "X",
		Google: GoogleConfig{
			ClientID: "id", ClientSecret: "secret", RefreshToken: "rt",
			ParentFolderID: "parent",
		},
		Notion: NotionConfig{Token: "tok", DatabaseID: "db"},
	}
	assert.NoError(t, cfg.Validate())
}
