package github

import (
	"net/http"

	"go.trai.ch/diffy/internal/core/domain"
)

// NewClientWithTransport exports newClientWithTransport for testing.
func NewClientWithTransport(settings domain.Settings, transport http.RoundTripper) *Client {
	return newClientWithTransport(settings, transport)
}
