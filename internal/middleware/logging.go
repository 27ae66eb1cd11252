package middleware

import (
	"github.com/go-resty/resty/v2"
	"github.com/ternarybob/arbor"
)

// Logging logs every Jira API call with its outcome
func Logging(logger arbor.ILogger) resty.ResponseMiddleware {
	return func(_ *resty.Client, resp *resty.Response) error {
		logger.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("Jira request")
		return nil
	}
}
