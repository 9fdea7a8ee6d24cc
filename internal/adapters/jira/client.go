// Package jira provides the remote issue-lookup adapter. It performs a
// single authenticated GET per lookup, requesting only the summary field.
package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MyCarrier-DevOps/branchpad/internal/domain"
)

// requestTimeout bounds the summary lookup; the lookup is advisory and
// must never stall the command for long.
const requestTimeout = 15 * time.Second

// maxErrorBodyBytes caps how much of an error response body is carried
// into the RemoteError message.
const maxErrorBodyBytes = 512

// issueResponse mirrors the subset of the issue REST payload we request.
type issueResponse struct {
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

// Client implements domain.IssueGateway against the issue tracker's REST API.
type Client struct {
	baseURL string
	email   string
	token   string
	http    *http.Client
}

// NewClient creates a Client for the given base URL and credentials.
func NewClient(baseURL, email, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// FetchSummary fetches the issue's summary field. Any failure, including
// a 2xx response without a usable summary, is a *domain.RemoteError.
func (c *Client) FetchSummary(ctx context.Context, ref domain.TicketReference) (string, error) {
	url := fmt.Sprintf("%s/rest/api/2/issue/%s?fields=summary", c.baseURL, ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.RemoteError{Message: "invalid request", Err: err}
	}
	req.SetBasicAuth(c.email, c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &domain.RemoteError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    errorDetail(resp),
		}
	}

	var issue issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return "", &domain.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    "unreadable response body",
			Err:        err,
		}
	}

	summary := strings.TrimSpace(issue.Fields.Summary)
	if summary == "" {
		return "", &domain.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    "missing summary",
		}
	}

	return summary, nil
}

// errorDetail extracts a short human-readable detail from an error response.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err == nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			return text
		}
	}
	return resp.Status
}
