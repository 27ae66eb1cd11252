package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"jira-auto-close/internal/common"
	"jira-auto-close/internal/services"

	"github.com/containeroo/tinyflags"
)

const appName = "jira-auto-close"

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout))
}

// run returns the process exit code. Configuration problems stop it before
// any request reaches Jira; per-issue failures do not change the exit code.
func run(ctx context.Context, args []string, getEnv func(string) string, out io.Writer) int {
	flags, err := common.ParseArgs(appName, common.GetFullVersion(), args, out, getEnv)
	if err != nil {
		if tinyflags.IsHelpRequested(err) || tinyflags.IsVersionRequested(err) {
			fmt.Fprint(out, err.Error()) // nolint:errcheck
			return 0
		}
		fmt.Fprintf(os.Stderr, "Failed to parse arguments: %v\n", err)
		return 1
	}

	cfg, err := common.LoadConfig(flags.ConfigPath, getEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	if flags.Validate {
		fmt.Fprintln(out, "Configuration is valid") // nolint:errcheck
		return 0
	}

	if err := common.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	logger := common.GetLogger()

	if !flags.Quiet {
		common.PrintBanner(appName, cfg, flags.ConfigPath, common.GetLogFilePath())
	}

	logger.Info().
		Str("version", common.GetVersion()).
		Str("build", common.GetBuild()).
		Str("project", cfg.Jira.ProjectKey).
		Msg("Starting Jira auto close")

	client := services.NewJiraClient(&cfg.Jira, logger)
	runner := services.NewRunner(&cfg.Jira, client, logger)
	result := runner.Run(ctx)

	if !flags.Quiet {
		switch {
		case len(result.Found) == 0:
			common.PrintWarning("Nothing to close")
		case len(result.Failed) > 0:
			common.PrintError(fmt.Sprintf("%d of %d issues could not be closed", len(result.Failed), len(result.Found)))
		default:
			common.PrintSuccess(fmt.Sprintf("%d issues closed", len(result.Closed)))
		}
	}

	return 0
}
