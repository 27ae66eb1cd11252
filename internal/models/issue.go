package models

// IssueRef identifies a Jira issue by key. Search requests only ask for the
// key field, so nothing else is retained.
type IssueRef struct {
	Key string `json:"key"`
}

// SearchResponse represents the subset of the Jira search API response in use
type SearchResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []IssueRef `json:"issues"`
}

// Keys returns the issue keys in response order
func (r *SearchResponse) Keys() []string {
	keys := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		keys = append(keys, issue.Key)
	}
	return keys
}

// TransitionRequest is the body of POST /rest/api/3/issue/{key}/transitions
type TransitionRequest struct {
	Transition TransitionID `json:"transition"`
}

type TransitionID struct {
	ID string `json:"id"`
}

func NewTransitionRequest(id string) TransitionRequest {
	return TransitionRequest{Transition: TransitionID{ID: id}}
}
