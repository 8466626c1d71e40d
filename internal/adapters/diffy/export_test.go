package diffy

import "net/http"

// NewClientWithHTTP exports newClientWithHTTP for testing.
func NewClientWithHTTP(baseURL string, client *http.Client) *Client {
	return newClientWithHTTP(baseURL, client)
}
