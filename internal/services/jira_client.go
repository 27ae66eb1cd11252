package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	. "jira-auto-close/internal/common"
	. "jira-auto-close/internal/interfaces"
	"jira-auto-close/internal/middleware"
	"jira-auto-close/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/ternarybob/arbor"
)

const (
	searchPath     = "/rest/api/3/search"
	transitionPath = "/rest/api/3/issue/{issueKey}/transitions"
)

type jiraClient struct {
	client  *resty.Client
	baseURL string
}

func NewJiraClient(config *JiraConfig, logger arbor.ILogger) JiraClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(config.BaseURL, "/")).
		SetBasicAuth(config.Email, config.APIToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		OnAfterResponse(middleware.Logging(logger))

	if config.Timeout > 0 {
		client.SetTimeout(time.Duration(config.Timeout) * time.Second)
	}

	return &jiraClient{
		client:  client,
		baseURL: config.BaseURL,
	}
}

func (jc *jiraClient) SearchIssues(ctx context.Context, jql string, fields ...string) (*models.SearchResponse, error) {
	var response models.SearchResponse

	req := jc.client.R().
		SetContext(ctx).
		SetQueryParam("jql", jql).
		SetResult(&response)
	if len(fields) > 0 {
		req.SetQueryParam("fields", strings.Join(fields, ","))
	}

	resp, err := req.Get(searchPath)
	if err != nil {
		return nil, WrapError(err, ErrorTypeNetwork, "SEARCH_REQUEST_FAILED", "failed to search issues")
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, NewJiraError("SEARCH_FAILED", "failed to fetch open issues").
			WithDetails(fmt.Sprintf("status %d: %s", resp.StatusCode(), resp.String())).
			WithContext("status", resp.StatusCode())
	}

	return &response, nil
}

func (jc *jiraClient) TransitionIssue(ctx context.Context, issueKey, transitionID string) error {
	resp, err := jc.client.R().
		SetContext(ctx).
		SetPathParam("issueKey", issueKey).
		SetBody(models.NewTransitionRequest(transitionID)).
		Post(transitionPath)
	if err != nil {
		return WrapError(err, ErrorTypeNetwork, "TRANSITION_REQUEST_FAILED",
			fmt.Sprintf("failed to transition %s", issueKey))
	}

	if resp.StatusCode() != http.StatusNoContent {
		return NewJiraError("TRANSITION_FAILED", fmt.Sprintf("failed to close %s", issueKey)).
			WithDetails(fmt.Sprintf("status %d: %s", resp.StatusCode(), resp.String())).
			WithContext("issue", issueKey).
			WithContext("status", resp.StatusCode())
	}

	return nil
}

// BuildOpenIssuesJQL selects every issue of the project not yet in doneStatus.
func BuildOpenIssuesJQL(projectKey, doneStatus string) string {
	parts := []string{fmt.Sprintf("project = %s", projectKey)}

	if strings.ContainsAny(doneStatus, " \t") {
		doneStatus = fmt.Sprintf("%q", doneStatus)
	}
	parts = append(parts, fmt.Sprintf("status != %s", doneStatus))

	return strings.Join(parts, " AND ")
}
