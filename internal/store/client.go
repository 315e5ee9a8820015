package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/venturebridge/backend/pkg/apperrors"
)

// Collection paths on the record store.
const (
	UsersCollection                 = "/users"
	InvestorsCollection             = "/investors"
	EntrepreneursCollection         = "/entrepreneurs"
	CollaborationRequestsCollection = "/collaborationRequests"
)

// Client talks to the external record store, a JSON collection API. Every
// operation is a single HTTP round trip bounded by the client timeout; there
// are no retries and no caching, so each call reflects the backend's state at
// call time.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a record store client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do performs one request against the store. Network failures and timeouts
// surface as ErrTransport, a 404 as ErrNotFound; a 2xx body is decoded into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %v", err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s returned status %d", apperrors.ErrTransport, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: failed to decode response from %s: %v", apperrors.ErrTransport, path, err)
		}
	}
	return nil
}

// List fetches every record of a collection into out (a pointer to a slice).
func (c *Client) List(ctx context.Context, collection string, out interface{}) error {
	return c.do(ctx, http.MethodGet, collection, nil, nil, out)
}

// Query fetches the records of a collection matching the query parameters.
func (c *Client) Query(ctx context.Context, collection string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, collection, query, nil, out)
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, collection string, id int64, out interface{}) error {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", collection, id), nil, nil, out)
}

// Create stores a new record; the stored record, including the id the store
// assigned, is decoded into out.
func (c *Client) Create(ctx context.Context, collection string, record, out interface{}) error {
	return c.do(ctx, http.MethodPost, collection, nil, record, out)
}

// Update replaces a record in full.
func (c *Client) Update(ctx context.Context, collection string, id int64, record, out interface{}) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", collection, id), nil, record, out)
}

// Patch applies a partial update, leaving fields absent from patch unchanged.
func (c *Client) Patch(ctx context.Context, collection string, id int64, patch, out interface{}) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", collection, id), nil, patch, out)
}

// Delete removes a record by id.
func (c *Client) Delete(ctx context.Context, collection string, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", collection, id), nil, nil, nil)
}
