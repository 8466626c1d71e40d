// Package circleci implements the CircleCIClient port over the CircleCI v1.1 API.
package circleci

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client implements ports.CircleCIClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the API endpoint and timeout in settings.
func NewClient(settings domain.Settings) *Client {
	return newClientWithHTTP(settings.CircleCIAPIURL, &http.Client{
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

// SetEnvVar creates or replaces v on the CircleCI project of target.
func (c *Client) SetEnvVar(ctx context.Context, token string, target domain.EnvVarTarget, v domain.EnvVar) error {
	endpoint := c.baseURL + "/project/gh/" + url.PathEscape(target.Login) + "/" + url.PathEscape(target.Site) + "/envvar"

	body, err := json.Marshal(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvVarPushFailed.Error()), "name", v.Name)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvVarPushFailed.Error()), "name", v.Name)
	}
	req.SetBasicAuth(token, "")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", domain.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvVarPushFailed.Error()), "name", v.Name)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		pushErr := zerr.With(domain.ErrEnvVarPushFailed, "name", v.Name)
		pushErr = zerr.With(pushErr, "status_code", resp.StatusCode)
		return zerr.With(pushErr, "project", target.Login+"/"+target.Site)
	}

	return nil
}
