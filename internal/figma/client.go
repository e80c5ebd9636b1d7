package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultBaseURL = "https://api.figma.com/v1"

// fileCacheSize bounds the LRU of decoded file documents. A single run
// touches the same file more than once (analysis plus project name), so
// even a small cache keeps that to one network call.
const fileCacheSize = 16

// Client talks to the Figma REST API. Requests carry the caller-supplied
// token in the X-Figma-Token header. No retries: a failed call fails the
// unit of work that issued it.
type Client struct {
	// HTTPClient and BaseURL may be overridden before first use.
	HTTPClient *http.Client
	BaseURL    string

	token string
	files *lru.Cache[string, *File]
}

// NewClient returns a client for the given API token.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("figma: API token is required")
	}
	files, err := lru.New[string, *File](fileCacheSize)
	if err != nil {
		return nil, err
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    defaultBaseURL,
		token:      token,
		files:      files,
	}, nil
}

// File fetches the full document tree for a file key. Decoded responses
// are cached per key for the lifetime of the client.
func (c *Client) File(ctx context.Context, fileKey string) (*File, error) {
	if cached, ok := c.files.Get(fileKey); ok {
		return cached, nil
	}
	body, err := c.get(ctx, c.BaseURL+"/files/"+url.PathEscape(fileKey), true)
	if err != nil {
		return nil, err
	}
	var file File
	if err := json.Unmarshal(body, &file); err != nil {
		return nil, fmt.Errorf("figma: decode file %s: %w", fileKey, err)
	}
	c.files.Add(fileKey, &file)
	return &file, nil
}

// ProjectName returns the display name of the file, or a placeholder when
// the API reports none.
func (c *Client) ProjectName(ctx context.Context, fileKey string) (string, error) {
	file, err := c.File(ctx, fileKey)
	if err != nil {
		return "", err
	}
	if file.Name == "" {
		return "Unknown Project", nil
	}
	return file.Name, nil
}

// NodeImage asks the images endpoint to render one node as PNG and returns
// the asset URL. The asset must be downloaded separately.
func (c *Client) NodeImage(ctx context.Context, fileKey, nodeID string) (string, error) {
	endpoint := fmt.Sprintf("%s/images/%s?ids=%s&format=png",
		c.BaseURL, url.PathEscape(fileKey), url.QueryEscape(nodeID))
	body, err := c.get(ctx, endpoint, true)
	if err != nil {
		return "", err
	}
	var resp struct {
		Err    *string           `json:"err"`
		Images map[string]string `json:"images"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("figma: decode image response: %w", err)
	}
	if resp.Err != nil {
		return "", fmt.Errorf("figma: render node %s: %s", nodeID, *resp.Err)
	}
	imageURL, ok := resp.Images[nodeID]
	if !ok || imageURL == "" {
		return "", fmt.Errorf("figma: no image rendered for node %s", nodeID)
	}
	return imageURL, nil
}

// DownloadImage fetches the raw bytes of a rendered image asset.
func (c *Client) DownloadImage(ctx context.Context, imageURL string) ([]byte, error) {
	return c.get(ctx, imageURL, false)
}

func (c *Client) get(ctx context.Context, rawURL string, authed bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	if authed {
		req.Header.Set("X-Figma-Token", c.token)
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}
	return body, nil
}
