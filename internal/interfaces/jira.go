package interfaces

import (
	"context"

	"jira-auto-close/internal/models"
)

// JiraClient is the subset of the Jira REST API the runner depends on.
type JiraClient interface {
	SearchIssues(ctx context.Context, jql string, fields ...string) (*models.SearchResponse, error)
	TransitionIssue(ctx context.Context, issueKey, transitionID string) error
}
