package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("reads everything from the environment", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("", envMap(map[string]string{
			"JIRA_URL":           "https://acme.atlassian.net",
			"JIRA_EMAIL":         "bot@acme.io",
			"JIRA_API_TOKEN":     "token",
			"PROJECT_KEY":        "OPS",
			"DONE_TRANSITION_ID": "31",
		}))
		require.NoError(t, err)

		assert.Equal(t, "https://acme.atlassian.net", cfg.Jira.BaseURL)
		assert.Equal(t, "bot@acme.io", cfg.Jira.Email)
		assert.Equal(t, "token", cfg.Jira.APIToken)
		assert.Equal(t, "OPS", cfg.Jira.ProjectKey)
		assert.Equal(t, "31", cfg.Jira.DoneTransitionID)
		assert.Equal(t, "Done", cfg.Jira.DoneStatus)
		assert.Equal(t, 0, cfg.Jira.Timeout)
		assert.Equal(t, "info", cfg.Logging.Level)
		assert.Equal(t, "console", cfg.Logging.Output)
	})

	t.Run("missing token is a fatal configuration error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("", envMap(map[string]string{
			"JIRA_URL":    "https://acme.atlassian.net",
			"PROJECT_KEY": "OPS",
		}))
		require.Error(t, err)

		var autoErr *AutomationError
		require.True(t, errors.As(err, &autoErr))
		assert.Equal(t, ErrorTypeConfiguration, autoErr.Type)
		assert.Equal(t, "MISSING_API_TOKEN", autoErr.Code)
		assert.True(t, autoErr.Fatal())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
[jira]
base_url = "https://file.atlassian.net"
email = "file@acme.io"
api_token = "file-token"
project_key = "FILE"
done_transition_id = "41"
done_status = "Closed"
timeout_seconds = 15

[logging]
level = "debug"
output = "console"
`)

		cfg, err := LoadConfig(path, envMap(map[string]string{
			"PROJECT_KEY": "ENV",
			"LOG_LEVEL":   "warn",
		}))
		require.NoError(t, err)

		assert.Equal(t, "https://file.atlassian.net", cfg.Jira.BaseURL)
		assert.Equal(t, "file-token", cfg.Jira.APIToken)
		assert.Equal(t, "ENV", cfg.Jira.ProjectKey)
		assert.Equal(t, "41", cfg.Jira.DoneTransitionID)
		assert.Equal(t, "Closed", cfg.Jira.DoneStatus)
		assert.Equal(t, 15, cfg.Jira.Timeout)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("invalid timeout in environment is ignored", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("", envMap(map[string]string{
			"JIRA_API_TOKEN":       "token",
			"JIRA_TIMEOUT_SECONDS": "soon",
		}))
		require.NoError(t, err)
		assert.Equal(t, 0, cfg.Jira.Timeout)
	})

	t.Run("fails if file missing", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("does-not-exist.toml", envMap(nil))
		require.Error(t, err)

		var autoErr *AutomationError
		require.True(t, errors.As(err, &autoErr))
		assert.Equal(t, "CONFIG_READ_FAILED", autoErr.Code)
	})

	t.Run("fails on malformed toml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "[jira\nbase_url = ")

		_, err := LoadConfig(path, envMap(map[string]string{"JIRA_API_TOKEN": "token"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("rejects unknown log output", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("", envMap(map[string]string{
			"JIRA_API_TOKEN": "token",
			"LOG_OUTPUT":     "syslog",
		}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log output: syslog")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("restores empty done status", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Jira.APIToken = "token"
		cfg.Jira.DoneStatus = ""

		require.NoError(t, cfg.Validate())
		assert.Equal(t, "Done", cfg.Jira.DoneStatus)
	})

	t.Run("rejects negative timeout", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Jira.APIToken = "token"
		cfg.Jira.Timeout = -1

		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		cfg := DefaultConfig()
		cfg.Jira.APIToken = "token"
		cfg.Logging.Level = "verbose"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, "[configuration:INVALID_LOG_LEVEL] invalid log level: verbose", err.Error())
	})
}
