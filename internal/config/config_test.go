package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `
server:
  host: "0.0.0.0"
  port: 8080
firestore:
  project_id: "gearshed-test"
auth:
  mode: "local"
  jwt_secret: "0123456789abcdef0123456789abcdef"
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
	assert.Equal(t, "gearshed-test", cfg.Firestore.ProjectID)
	assert.Equal(t, "local", cfg.Auth.Mode)

	// defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "0 0 2 * * *", cfg.Scheduler.ScanOverdueRentals)
	assert.Equal(t, "0 0 3 * * *", cfg.Scheduler.SendOverdueReminders)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("FIRESTORE_PROJECT_ID", "gearshed-env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gearshed-env", cfg.Firestore.ProjectID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:    ServerConfig{Host: "localhost", Port: 8080},
			Firestore: FirestoreConfig{ProjectID: "p"},
		}
	}

	t.Run("Defaults auth mode to firebase", func(t *testing.T) {
		cfg := base()
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "firebase", cfg.Auth.Mode)
	})

	t.Run("Rejects bad port", func(t *testing.T) {
		cfg := base()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("Requires project id", func(t *testing.T) {
		cfg := base()
		cfg.Firestore.ProjectID = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("Local mode requires long secret", func(t *testing.T) {
		cfg := base()
		cfg.Auth.Mode = "local"
		cfg.Auth.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Unknown auth mode", func(t *testing.T) {
		cfg := base()
		cfg.Auth.Mode = "basic"
		assert.Error(t, cfg.Validate())
	})

	t.Run("SendGrid key requires sender", func(t *testing.T) {
		cfg := base()
		cfg.Email.SendGridAPIKey = "SG.key"
		assert.Error(t, cfg.Validate())

		cfg.Email.FromEmail = "noreply@example.com"
		assert.NoError(t, cfg.Validate())
	})
}
