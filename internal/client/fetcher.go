package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"orderboard/internal/core/domain/model/order"
)

// HTTPFetcher retrieves the full order snapshot from the backend REST API,
// including delivered orders so the board can grey them out.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher against the backend base URL
// (e.g. "http://localhost:8080").
func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (f *HTTPFetcher) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	url := f.baseURL + "/orders?includeCompleted=true"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status fetching orders: %s", resp.Status)
	}

	var body struct {
		Orders []*order.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}

	return body.Orders, nil
}
