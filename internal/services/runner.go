package services

import (
	"context"
	"strings"

	. "jira-auto-close/internal/common"
	. "jira-auto-close/internal/interfaces"

	"github.com/ternarybob/arbor"
)

// RunResult summarises one pass over the open issues of a project.
type RunResult struct {
	Found  []string
	Closed []string
	Failed []string
}

// Runner closes every open issue of the configured project, one at a time.
type Runner struct {
	config *JiraConfig
	client JiraClient
	logger arbor.ILogger
}

func NewRunner(config *JiraConfig, client JiraClient, logger arbor.ILogger) *Runner {
	return &Runner{
		config: config,
		client: client,
		logger: logger,
	}
}

// FetchOpenIssues returns the keys of issues not yet done, in search order.
// A failed search is logged and reported as no issues.
func (r *Runner) FetchOpenIssues(ctx context.Context) []string {
	r.logger.Info().Str("project", r.config.ProjectKey).Msg("Fetching open issues...")

	jql := BuildOpenIssuesJQL(r.config.ProjectKey, r.config.DoneStatus)
	response, err := r.client.SearchIssues(ctx, jql, "key")
	if err != nil {
		r.logger.Error().Err(err).Str("jql", jql).Msg("Failed to fetch open issues")
		return []string{}
	}

	keys := response.Keys()
	r.logger.Info().
		Int("count", len(keys)).
		Str("issues", strings.Join(keys, ", ")).
		Msg("Found open issues")

	return keys
}

// CloseIssue moves one issue to done. The error is for accounting only.
func (r *Runner) CloseIssue(ctx context.Context, issueKey string) error {
	if err := r.client.TransitionIssue(ctx, issueKey, r.config.DoneTransitionID); err != nil {
		r.logger.Error().Err(err).Str("issue", issueKey).Msg("Failed to close issue")
		return err
	}

	r.logger.Info().Str("issue", issueKey).Msg("Issue successfully moved to Done")
	return nil
}

func (r *Runner) Run(ctx context.Context) RunResult {
	result := RunResult{Found: r.FetchOpenIssues(ctx)}

	if len(result.Found) == 0 {
		r.logger.Info().Msg("No open issues found. Nothing to close.")
		return result
	}

	for _, key := range result.Found {
		if err := r.CloseIssue(ctx, key); err != nil {
			result.Failed = append(result.Failed, key)
			continue
		}
		result.Closed = append(result.Closed, key)
	}

	r.logger.Info().
		Int("processed", len(result.Found)).
		Int("closed", len(result.Closed)).
		Int("failed", len(result.Failed)).
		Msg("Process completed")

	return result
}
