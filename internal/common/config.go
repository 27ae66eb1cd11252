package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Jira    JiraConfig    `toml:"jira"`
	Logging LoggingConfig `toml:"logging"`
}

type JiraConfig struct {
	BaseURL          string `toml:"base_url"`
	Email            string `toml:"email"`
	APIToken         string `toml:"api_token"`
	ProjectKey       string `toml:"project_key"`
	DoneTransitionID string `toml:"done_transition_id"`
	DoneStatus       string `toml:"done_status"`
	Timeout          int    `toml:"timeout_seconds"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	Output     string `toml:"output"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
}

func DefaultConfig() *Config {
	return &Config{
		Jira: JiraConfig{
			DoneStatus: "Done",
		},
		Logging: *DefaultLoggingConfig(),
	}
}

// LoadConfig applies defaults, then the TOML file (explicit or auto-detected),
// then environment overrides read through getEnv.
func LoadConfig(configFile string, getEnv func(string) string) (*Config, error) {
	config := DefaultConfig()

	if configFile == "" {
		configFile = detectConfigFile()
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, WrapError(err, ErrorTypeConfiguration, "CONFIG_READ_FAILED",
				fmt.Sprintf("failed to read config file %s", configFile))
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, WrapError(err, ErrorTypeConfiguration, "CONFIG_PARSE_FAILED", "failed to parse config file")
		}
	}

	applyEnvOverrides(config, getEnv)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func detectConfigFile() string {
	execPath, _ := os.Executable()
	execDir := filepath.Dir(execPath)
	execName := filepath.Base(execPath)
	execName = execName[:len(execName)-len(filepath.Ext(execName))]

	possiblePaths := []string{
		filepath.Join(execDir, execName+".toml"),
		filepath.Join(execDir, "config.toml"),
		"config.toml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func applyEnvOverrides(config *Config, getEnv func(string) string) {
	if getEnv == nil {
		getEnv = os.Getenv
	}

	if baseURL := getEnv("JIRA_URL"); baseURL != "" {
		config.Jira.BaseURL = baseURL
	}
	if email := getEnv("JIRA_EMAIL"); email != "" {
		config.Jira.Email = email
	}
	if token := getEnv("JIRA_API_TOKEN"); token != "" {
		config.Jira.APIToken = token
	}
	if projectKey := getEnv("PROJECT_KEY"); projectKey != "" {
		config.Jira.ProjectKey = projectKey
	}
	if transitionID := getEnv("DONE_TRANSITION_ID"); transitionID != "" {
		config.Jira.DoneTransitionID = transitionID
	}
	if doneStatus := getEnv("DONE_STATUS"); doneStatus != "" {
		config.Jira.DoneStatus = doneStatus
	}
	if timeout := getEnv("JIRA_TIMEOUT_SECONDS"); timeout != "" {
		if seconds, err := strconv.Atoi(timeout); err == nil {
			config.Jira.Timeout = seconds
		}
	}

	if logLevel := getEnv("LOG_LEVEL"); logLevel != "" {
		config.Logging.Level = logLevel
	}
	if logOutput := getEnv("LOG_OUTPUT"); logOutput != "" {
		config.Logging.Output = logOutput
	}
}

func (c *Config) Validate() error {
	if c.Jira.APIToken == "" {
		return NewConfigurationError("MISSING_API_TOKEN", "JIRA_API_TOKEN is not set")
	}

	if c.Jira.DoneStatus == "" {
		c.Jira.DoneStatus = "Done"
	}

	if c.Jira.Timeout < 0 {
		return NewConfigurationError("INVALID_TIMEOUT", "jira timeout_seconds must not be negative")
	}

	validLogLevels := []string{"debug", "info", "warn", "error", "fatal", "panic"}
	validLevel := false
	for _, level := range validLogLevels {
		if c.Logging.Level == level {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return NewConfigurationError("INVALID_LOG_LEVEL", "invalid log level").WithDetails(c.Logging.Level)
	}

	validOutputs := []string{"console", "file", "both"}
	validOutput := false
	for _, output := range validOutputs {
		if c.Logging.Output == output {
			validOutput = true
			break
		}
	}
	if !validOutput {
		return NewConfigurationError("INVALID_LOG_OUTPUT", "invalid log output").WithDetails(c.Logging.Output)
	}

	return nil
}
