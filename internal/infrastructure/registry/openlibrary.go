// Package registry is the HTTP client for the external bibliographic
// lookup service (OpenLibrary Books API).
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"bookcatalog-backend/internal/shared/apperror"
)

// Client performs one-shot ISBN lookups. Calls are synchronous with no
// retry or circuit breaking; cancellation comes from the caller's context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// LookupISBN fetches the registry record for one ISBN. The payload is
// returned as-is; an empty or null response means the registry does not
// know the ISBN and raises the functional not-found error. Transport and
// decode failures stay technical.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (map[string]any, error) {
	reqURL := fmt.Sprintf("%s?bibkeys=ISBN:%s&format=json", c.baseURL, url.QueryEscape(isbn))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperror.Technical(fmt.Errorf("failed to build registry request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.Technical(fmt.Errorf("registry request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.Technical(fmt.Errorf("registry returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.Technical(fmt.Errorf("failed to read registry response: %w", err))
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperror.Technical(fmt.Errorf("failed to decode registry response: %w", err))
	}

	if len(payload) == 0 {
		return nil, apperror.BookNotFoundByISBN(isbn)
	}

	return payload, nil
}
