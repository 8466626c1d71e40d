// Package diffy implements the DiffyClient port over the Diffy REST API.
package diffy

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client implements ports.DiffyClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API endpoint and timeout in settings.
func NewClient(settings domain.Settings) *Client {
	return newClientWithHTTP(settings.DiffyAPIURL, &http.Client{
		Timeout: settings.Timeout,
	})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(baseURL string, client *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

type authRequest struct {
	Key string `json:"key"`
}

type authResponse struct {
	Token json.RawMessage `json:"token"`
}

type projectResponse struct {
	ID   domain.ProjectID `json:"id"`
	Name *string          `json:"name"`
}

type projectsResponse struct {
	Projects []domain.Project `json:"projects"`
}

// ValidateKey exchanges an API key for a session token.
// A 4xx answer or a response without a token means the key was rejected.
func (c *Client) ValidateKey(ctx context.Context, key string) (string, error) {
	body, err := json.Marshal(authRequest{Key: key})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrDiffyRequestFailed.Error())
	}

	var resp authResponse
	status, err := c.do(ctx, http.MethodPost, c.baseURL+"/auth/key", "", body, &resp)
	if isClientError(status) {
		return "", domain.ErrKeyRejected
	}
	if err != nil {
		return "", err
	}
	token, ok := scalarText(resp.Token)
	if !ok {
		return "", domain.ErrKeyRejected
	}

	return token, nil
}

// scalarText returns a JSON string or number as text. Absent, null, empty
// and structured values report false.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, s != ""
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}

// ListProjects returns one page of projects.
func (c *Client) ListProjects(ctx context.Context, token string, page domain.Page) ([]domain.Project, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(int(page)))

	var resp projectsResponse
	status, err := c.do(ctx, http.MethodGet, c.baseURL+"/projects?"+query.Encode(), token, nil, &resp)
	if err != nil {
		return nil, zerr.With(err, "page", int(page))
	}
	if isClientError(status) {
		return nil, zerr.With(domain.ErrDiffyRequestFailed, "status_code", status)
	}

	return resp.Projects, nil
}

// GetProject returns a project when it exists and the token owner can see it.
// A response carrying a name field counts as found, even when it is empty.
func (c *Client) GetProject(ctx context.Context, token string, id domain.ProjectID) (*domain.Project, error) {
	var resp projectResponse
	status, err := c.do(ctx, http.MethodGet, c.baseURL+"/projects/"+url.PathEscape(id.String()), token, nil, &resp)
	if isClientError(status) {
		return nil, domain.ErrProjectNotFound
	}
	if err != nil {
		return nil, zerr.With(err, "project_id", id.String())
	}
	if resp.Name == nil {
		return nil, domain.ErrProjectNotFound
	}

	project := domain.Project{ID: resp.ID, Name: *resp.Name}
	if project.ID == "" {
		project.ID = id
	}
	return &project, nil
}

// do sends a request and decodes a 2xx JSON body into out.
// The returned status is zero when no response was received.
// A 4xx status is returned without an error so callers can classify it.
func (c *Client) do(ctx context.Context, method, endpoint, token string, payload []byte, out any) (int, error) {
	var body io.Reader = http.NoBody
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrDiffyRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", domain.UserAgent)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrDiffyRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if isClientError(resp.StatusCode) {
		return resp.StatusCode, nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := zerr.With(domain.ErrDiffyRequestFailed, "status_code", resp.StatusCode)
		return resp.StatusCode, zerr.With(apiErr, "url", endpoint)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, zerr.Wrap(err, domain.ErrDiffyRequestFailed.Error())
	}

	if err := json.Unmarshal(data, out); err != nil {
		return resp.StatusCode, zerr.Wrap(err, domain.ErrDiffyParseFailed.Error())
	}

	return resp.StatusCode, nil
}

func isClientError(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError
}
