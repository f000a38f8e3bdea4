// Package sheets talks to the spreadsheet-backed attendance ledger: a
// deployed Apps Script web app that returns the full sheet as JSON rows and
// accepts append/delete actions via POST.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/edutrack/edutrack-backend-go/internal/config"
)

type Client struct {
	endpointURL string
	httpClient  *http.Client
}

func NewClient(cfg config.LedgerConfig) *Client {
	return &Client{
		endpointURL: cfg.EndpointURL,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Read fetches every row of the ledger. The far end offers no server-side
// filtering or pagination; all filtering happens in the caller.
func (c *Client) Read(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpointURL+"?action=read", nil)
	if err != nil {
		return nil, fmt.Errorf("build ledger read request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ledger read: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ledger read: unexpected status %d", resp.StatusCode)
	}

	var rows []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode ledger rows: %w", err)
	}
	return rows, nil
}

// Append adds one row to the ledger. The reference deployment cannot observe
// the response body, so success is assumed unless the transport itself fails.
func (c *Client) Append(ctx context.Context, row map[string]any) error {
	payload := map[string]any{"action": "add"}
	for k, v := range row {
		payload[k] = v
	}
	return c.post(ctx, payload)
}

// Delete removes a row by its ledger id. Same fire-and-forget semantics as
// Append.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.post(ctx, map[string]any{"action": "delete", "id": id})
}

func (c *Client) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode ledger payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build ledger write request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ledger write: %w", err)
	}
	defer resp.Body.Close()

	// The Apps Script endpoint answers opaquely; drain so the connection can
	// be reused but do not interpret the body.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
