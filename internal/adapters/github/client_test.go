package github_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffy/internal/adapters/github"
	"go.trai.ch/diffy/internal/core/domain"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "application/json; charset=utf-8")
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     header,
		Request:    req,
	}
}

func TestClient_CurrentLogin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var got *http.Request
		transport := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			got = req
			return jsonResponse(req, http.StatusOK, `{"login":"alice","id":1}`), nil
		}}

		client := github.NewClientWithTransport(domain.DefaultSettings(), transport)
		login, err := client.CurrentLogin(context.Background(), "gh1")

		require.NoError(t, err)
		assert.Equal(t, "alice", login)
		require.NotNil(t, got)
		assert.Equal(t, http.MethodGet, got.Method)
		assert.Equal(t, "https://api.github.com/user", got.URL.String())
		assert.Equal(t, "token gh1", got.Header.Get("Authorization"))
		assert.Equal(t, domain.UserAgent, got.Header.Get("User-Agent"))
	})

	t.Run("APIURLOverride", func(t *testing.T) {
		var got *http.Request
		transport := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			got = req
			return jsonResponse(req, http.StatusOK, `{"login":"bob"}`), nil
		}}

		settings := domain.DefaultSettings()
		settings.GitHubAPIURL = "http://127.0.0.1:8081"
		client := github.NewClientWithTransport(settings, transport)
		login, err := client.CurrentLogin(context.Background(), "gh1")

		require.NoError(t, err)
		assert.Equal(t, "bob", login)
		assert.Equal(t, "http://127.0.0.1:8081/user", got.URL.String())
		assert.Equal(t, "token gh1", got.Header.Get("Authorization"))
	})

	t.Run("Unauthorized", func(t *testing.T) {
		transport := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(req, http.StatusUnauthorized, `{"message":"Bad credentials"}`), nil
		}}

		client := github.NewClientWithTransport(domain.DefaultSettings(), transport)
		_, err := client.CurrentLogin(context.Background(), "bad")

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrGitHubLookupFailed.Error())
		assert.Contains(t, err.Error(), "Bad credentials")
	})

	t.Run("NetworkError", func(t *testing.T) {
		transport := &MockRoundTripper{RoundTripFunc: func(_ *http.Request) (*http.Response, error) {
			return nil, errors.New("no route to host")
		}}

		client := github.NewClientWithTransport(domain.DefaultSettings(), transport)
		_, err := client.CurrentLogin(context.Background(), "gh1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrGitHubLookupFailed.Error())
		assert.Contains(t, err.Error(), "no route to host")
	})

	t.Run("MissingLogin", func(t *testing.T) {
		transport := &MockRoundTripper{RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return jsonResponse(req, http.StatusOK, `{}`), nil
		}}

		client := github.NewClientWithTransport(domain.DefaultSettings(), transport)
		_, err := client.CurrentLogin(context.Background(), "gh1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrGitHubLookupFailed.Error())
	})
}
