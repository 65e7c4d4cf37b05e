// Package earthengine fetches composited satellite rasters from an Earth
// Engine style REST service: the client first asks the service to prepare
// a download for a composite, then streams the resulting GeoTIFF to disk.
package earthengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrUnauthorized is returned when the service rejects the access token.
// Callers should prompt for re-authentication instead of retrying.
var ErrUnauthorized = errors.New("earthengine: unauthorized")

// Provider fetches one composited raster into a local file.
type Provider interface {
	FetchImage(ctx context.Context, req ImageRequest, path string) error
}

type Client struct {
	BaseURL    string
	Project    string
	Token      string
	HTTPClient *http.Client
}

func NewClient(baseURL, project, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Project: project,
		Token:   token,
		// Composites are rendered server-side before the download starts,
		// which can take minutes for a full year of imagery.
		HTTPClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// DownloadURL asks the service to composite the requested image and
// returns the URL the result can be fetched from.
func (c *Client) DownloadURL(ctx context.Context, req ImageRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1/projects/%s/image:download", c.BaseURL, c.Project)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download url request failed: status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode download url response: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("download url response contained no url")
	}
	return out.URL, nil
}

// Fetch downloads url into path. Anything but a 200 response fails.
func (c *Client) Fetch(ctx context.Context, url, path string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download: status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// FetchImage runs both steps of a download.
func (c *Client) FetchImage(ctx context.Context, req ImageRequest, path string) error {
	url, err := c.DownloadURL(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("[*] Downloading from: %.50s...\n", url)
	return c.Fetch(ctx, url, path)
}
