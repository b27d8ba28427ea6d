package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pizzariapopovici/orderapi/internal/config"
	apperrors "github.com/pizzariapopovici/orderapi/pkg/errors"
)

// Client is a typed JSON client for the pizzeria REST backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new backend client
func NewClient(cfg config.BackendConfig, logger *zap.Logger) *Client {
	// Normalize base URL - drop trailing slashes so paths join cleanly
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// do executes a single JSON request against the backend. A 404 is mapped to
// *apperrors.ErrNotFound with the given resource name; any other non-2xx
// status is a generic backend error.
func (c *Client) do(ctx context.Context, method, path, resource string, reqBody, out interface{}) error {
	url := c.baseURL + path

	var body io.Reader
	if reqBody != nil {
		jsonData, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return &apperrors.ErrNotFound{Resource: resource, ID: path}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("backend API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

func (c *Client) get(ctx context.Context, path, resource string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, resource, nil, out)
}

func (c *Client) post(ctx context.Context, path, resource string, reqBody, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, resource, reqBody, out)
}

func (c *Client) put(ctx context.Context, path, resource string, reqBody, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, resource, reqBody, out)
}

func (c *Client) delete(ctx context.Context, path, resource string) error {
	return c.do(ctx, http.MethodDelete, path, resource, nil, nil)
}
