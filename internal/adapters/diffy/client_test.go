package diffy_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/diffy/internal/adapters/diffy"
	"go.trai.ch/diffy/internal/core/domain"
)

const testBaseURL = "https://diffy.test/api"

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(t *testing.T, handler func(req *http.Request) (*http.Response, error)) *diffy.Client {
	t.Helper()
	return diffy.NewClientWithHTTP(testBaseURL+"/", &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func TestClient_ValidateKey(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantToken string
		wantErr   error
	}{
		{name: "accepted", status: http.StatusOK, body: `{"token":"tok1"}`, wantToken: "tok1"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"bad key"}`, wantErr: domain.ErrKeyRejected},
		{name: "bad request", status: http.StatusBadRequest, body: ``, wantErr: domain.ErrKeyRejected},
		{name: "success without token", status: http.StatusOK, body: `{"status":"ok"}`, wantErr: domain.ErrKeyRejected},
		{name: "empty token", status: http.StatusOK, body: `{"token":""}`, wantErr: domain.ErrKeyRejected},
		{name: "numeric token", status: http.StatusOK, body: `{"token":123}`, wantToken: "123"},
		{name: "null token", status: http.StatusOK, body: `{"token":null}`, wantErr: domain.ErrKeyRejected},
		{name: "structured token", status: http.StatusOK, body: `{"token":{"v":1}}`, wantErr: domain.ErrKeyRejected},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`, wantErr: domain.ErrDiffyRequestFailed},
		{name: "undecodable body", status: http.StatusOK, body: `<html>`, wantErr: domain.ErrDiffyParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotBody map[string]string
			client := newMockClient(t, func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, http.MethodPost, req.Method)
				assert.Equal(t, testBaseURL+"/auth/key", req.URL.String())
				assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
				assert.Empty(t, req.Header.Get("Authorization"))
				require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
				return jsonResponse(tt.status, tt.body), nil
			})

			token, err := client.ValidateKey(context.Background(), "KEY")

			assert.Equal(t, map[string]string{"key": "KEY"}, gotBody)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestClient_ValidateKey_RejectionIsClassifiable(t *testing.T) {
	client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, ``), nil
	})

	_, err := client.ValidateKey(context.Background(), "KEY")

	assert.ErrorIs(t, err, domain.ErrKeyRejected)
}

func TestClient_ValidateKey_NetworkError(t *testing.T) {
	client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})

	_, err := client.ValidateKey(context.Background(), "KEY")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyRejected)
	assert.Contains(t, err.Error(), domain.ErrDiffyRequestFailed.Error())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_ListProjects(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newMockClient(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, testBaseURL+"/projects?page=2", req.URL.String())
			assert.Equal(t, "Bearer tok1", req.Header.Get("Authorization"))
			assert.Equal(t, "application/json", req.Header.Get("Accept"))
			return jsonResponse(http.StatusOK, `{"projects":[{"id":7,"name":"a"},{"id":"9","name":"b"}]}`), nil
		})

		projects, err := client.ListProjects(context.Background(), "tok1", 2)

		require.NoError(t, err)
		assert.Equal(t, []domain.Project{{ID: "7", Name: "a"}, {ID: "9", Name: "b"}}, projects)
	})

	t.Run("PastTheEnd", func(t *testing.T) {
		client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"projects":[]}`), nil
		})

		projects, err := client.ListProjects(context.Background(), "tok1", 40)

		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnauthorized, ``), nil
		})

		_, err := client.ListProjects(context.Background(), "tok1", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrDiffyRequestFailed.Error())
	})

	t.Run("ServerError", func(t *testing.T) {
		client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadGateway, ``), nil
		})

		_, err := client.ListProjects(context.Background(), "tok1", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrDiffyRequestFailed.Error())
	})
}

func TestClient_GetProject(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    *domain.Project
		wantErr error
	}{
		{
			name:   "found",
			status: http.StatusOK,
			body:   `{"id":42,"name":"demo"}`,
			want:   &domain.Project{ID: "42", Name: "demo"},
		},
		{
			name:   "found without id",
			status: http.StatusOK,
			body:   `{"name":"demo"}`,
			want:   &domain.Project{ID: "42", Name: "demo"},
		},
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: domain.ErrProjectNotFound},
		{name: "forbidden", status: http.StatusForbidden, body: ``, wantErr: domain.ErrProjectNotFound},
		{
			name:   "empty name",
			status: http.StatusOK,
			body:   `{"id":42,"name":""}`,
			want:   &domain.Project{ID: "42", Name: ""},
		},
		{name: "missing name", status: http.StatusOK, body: `{"id":42}`, wantErr: domain.ErrProjectNotFound},
		{name: "null name", status: http.StatusOK, body: `{"id":42,"name":null}`, wantErr: domain.ErrProjectNotFound},
		{name: "server error", status: http.StatusServiceUnavailable, body: ``, wantErr: domain.ErrDiffyRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newMockClient(t, func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, testBaseURL+"/projects/42", req.URL.String())
				assert.Equal(t, "Bearer tok1", req.Header.Get("Authorization"))
				return jsonResponse(tt.status, tt.body), nil
			})

			project, err := client.GetProject(context.Background(), "tok1", "42")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				assert.Nil(t, project)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, project)
		})
	}
}

func TestClient_GetProject_NotFoundIsClassifiable(t *testing.T) {
	client := newMockClient(t, func(_ *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, ``), nil
	})

	_, err := client.GetProject(context.Background(), "tok1", "1")

	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestClient_ContextCanceled(t *testing.T) {
	client := diffy.NewClient(domain.DefaultSettings())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListProjects(ctx, "tok1", 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDiffyRequestFailed.Error())
}
