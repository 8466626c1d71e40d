// Package github implements the GitHubClient port using the go-gh REST client.
package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/cli/go-gh/v2/pkg/api"
	"go.trai.ch/diffy/internal/core/domain"
	"go.trai.ch/zerr"
)

type userResponse struct {
	Login string `json:"login"`
}

// Client implements ports.GitHubClient.
type Client struct {
	host      string
	userURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

// NewClient creates a Client for the GitHub host in settings.
func NewClient(settings domain.Settings) *Client {
	return newClientWithTransport(settings, http.DefaultTransport)
}

// newClientWithTransport creates a Client with a custom transport (used for testing).
func newClientWithTransport(settings domain.Settings, transport http.RoundTripper) *Client {
	c := &Client{
		host:      settings.GitHubHost,
		userURL:   "user",
		timeout:   settings.Timeout,
		transport: transport,
	}

	if settings.GitHubAPIURL != "" {
		c.userURL = settings.GitHubAPIURL + "/user"
		if u, err := url.Parse(settings.GitHubAPIURL); err == nil && u.Hostname() != "" {
			c.host = u.Hostname()
		}
	}

	return c
}

// CurrentLogin returns the login of the user owning token.
func (c *Client) CurrentLogin(ctx context.Context, token string) (string, error) {
	// Host, token and transport are always set so go-gh never consults the gh config.
	client, err := api.NewRESTClient(api.ClientOptions{
		AuthToken:    token,
		Host:         c.host,
		Transport:    c.transport,
		Timeout:      c.timeout,
		LogIgnoreEnv: true,
		Headers: map[string]string{
			"Accept":     "application/vnd.github+json",
			"User-Agent": domain.UserAgent,
		},
	})
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrGitHubLookupFailed.Error())
	}

	var user userResponse
	if err := client.DoWithContext(ctx, http.MethodGet, c.userURL, nil, &user); err != nil {
		wrapped := zerr.Wrap(err, domain.ErrGitHubLookupFailed.Error())

		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			return "", zerr.With(wrapped, "status_code", httpErr.StatusCode)
		}
		return "", wrapped
	}

	if user.Login == "" {
		return "", zerr.With(domain.ErrGitHubLookupFailed, "host", c.host)
	}

	return user.Login, nil
}
