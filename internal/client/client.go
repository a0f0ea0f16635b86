package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/NailaFatima/RTSPstream-dragable-overlay/internal/models"
)

// ErrNotFound mirrors the server's 404 for an unknown overlay id.
var ErrNotFound = errors.New("overlay not found")

// Client talks to the overlay REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) ListOverlays(ctx context.Context) ([]models.Overlay, error) {
	var overlays []models.Overlay
	if err := c.do(ctx, http.MethodGet, "/api/overlays", nil, &overlays); err != nil {
		return nil, err
	}
	return overlays, nil
}

func (c *Client) CreateOverlay(ctx context.Context, in models.OverlayInput) (models.Overlay, error) {
	var overlay models.Overlay
	err := c.do(ctx, http.MethodPost, "/api/overlays", in, &overlay)
	return overlay, err
}

func (c *Client) GetOverlay(ctx context.Context, id string) (models.Overlay, error) {
	var overlay models.Overlay
	err := c.do(ctx, http.MethodGet, "/api/overlays/"+id, nil, &overlay)
	return overlay, err
}

func (c *Client) UpdateOverlay(ctx context.Context, id string, update models.OverlayUpdate) (models.Overlay, error) {
	var overlay models.Overlay
	err := c.do(ctx, http.MethodPut, "/api/overlays/"+id, update, &overlay)
	return overlay, err
}

func (c *Client) DeleteOverlay(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/overlays/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, errorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "no error details"
}
