// Package remote implements the HTTP client for the remote report store.
// The store exposes three operations on /api/reports: POST (append), GET
// (list), and DELETE (clear). Any response outside the 2xx range is a
// failure; callers degrade to the local fallback rather than retrying.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/drillquiz/drillquiz/internal/report"
)

const (
	reportsPath = "/api/reports"

	// defaultTimeout bounds every request so a slow remote degrades to
	// the fallback path instead of hanging the UI.
	defaultTimeout = 10 * time.Second
)

// Client talks to the remote report store.
type Client struct {
	baseURL string
	client  *http.Client
}

var _ report.RemoteStore = (*Client)(nil)

// NewClient creates a client for the store rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// Append posts a report to the store.
func (c *Client) Append(ctx context.Context, r report.TrainingReport) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+reportsPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("append report: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return fmt.Errorf("append report: HTTP %d", resp.StatusCode)
	}
	return nil
}

// List fetches all reports from the store.
func (c *Client) List(ctx context.Context) ([]report.TrainingReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+reportsPath, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !success(resp.StatusCode) {
		return nil, fmt.Errorf("list reports: HTTP %d", resp.StatusCode)
	}

	var reports []report.TrainingReport
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, fmt.Errorf("decode reports: %w", err)
	}
	return reports, nil
}

// Clear deletes all reports from the store.
func (c *Client) Clear(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+reportsPath, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("clear reports: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !success(resp.StatusCode) {
		return fmt.Errorf("clear reports: HTTP %d", resp.StatusCode)
	}
	return nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}
