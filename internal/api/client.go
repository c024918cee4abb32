package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
)

// Client is an HTTP client for the Folio API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Minute, // Long timeout for large file operations
		},
	}
}

// Get performs a GET request and decodes the JSON response.
func (c *Client) Get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return c.handleJSONResponse(resp, result)
}

// PostFile uploads the file at filePath as a multipart form and streams
// the binary response body to out. extraFields are added as plain form
// values.
func (c *Client) PostFile(ctx context.Context, path, field, filePath string, extraFields map[string]string, out io.Writer) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	for k, v := range extraFields {
		if err := mw.WriteField(k, v); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", k, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// WaitHealthy polls the health endpoint until the server reports ok or
// the timeout elapses.
func (c *Client) WaitHealthy(ctx context.Context, timeout time.Duration) error {
	return retry.Do(
		func() error {
			var resp struct {
				Status string `json:"status"`
			}
			if err := c.Get(ctx, "/health", &resp); err != nil {
				return err
			}
			if resp.Status != "ok" {
				return fmt.Errorf("unhealthy status: %s", resp.Status)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(timeout.Seconds())),
		retry.Delay(1*time.Second),
	)
}

// handleJSONResponse decodes a JSON response, converting error statuses.
func (c *Client) handleJSONResponse(resp *http.Response, result any) error {
	if resp.StatusCode != http.StatusOK {
		return decodeError(resp)
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("server error: %s", resp.Status)
}
