package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const figmaAPIBase = "https://api.figma.com/v1"

const maxRetries = 3

// Client is a Figma API client with retry logic and transport settings
// tuned for large design files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a Figma API client authenticated with the given
// personal access token. HTTP/2 is disabled to avoid stream errors with
// large files, and the timeout is generous for the same reason.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// SetBaseURL overrides the Figma API base URL. Used by tests to point the
// client at a local server.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

// GetFile retrieves the complete document tree for a file.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	body, err := c.get(fmt.Sprintf("%s/files/%s", c.baseURL, fileKey))
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("failed to parse file response: %w", err)
	}
	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes of a file by ID. More efficient
// than GetFile when only a palette frame is needed.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node IDs provided")
	}

	url := fmt.Sprintf("%s/files/%s/nodes?ids=%s", c.baseURL, fileKey, strings.Join(nodeIDs, ","))
	body, err := c.get(url)
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, fmt.Errorf("failed to parse nodes response: %w", err)
	}
	return &nodesResp, nil
}

// get performs an authenticated GET with automatic retries. Requests are
// retried on transport errors, 429 and 5xx responses with linear backoff.
func (c *Client) get(url string) ([]byte, error) {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retryable, err := c.getOnce(url)
		if err == nil {
			return body, nil
		}

		lastErr = fmt.Errorf("attempt %d: %w", attempt, err)
		if !retryable || attempt == maxRetries {
			return nil, lastErr
		}
		time.Sleep(time.Duration(attempt) * 2 * time.Second)
	}

	return nil, lastErr
}

func (c *Client) getOnce(url string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)
	// Avoid HTTP/2 stream errors with large files.
	req.Header.Set("Connection", "close")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(msg))
	}

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, false, nil
}

// fileKeyRegex matches figma.com/file/<key>/... and figma.com/design/<key>/...
// URLs. Anchored so the whole URL must match the expected pattern.
var fileKeyRegex = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Both /file/ and /design/ URL forms are supported.
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyRegex.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a figma.com URL with a /file/ or /design/ path")
	}
	return matches[1], nil
}

var nodeIDParamRegex = regexp.MustCompile(`[?&]node-id=([^&#]+)`)

// ExtractNodeIDs returns the node IDs referenced by a Figma URL's node-id
// query parameter, normalized to the id:id form the nodes API expects.
// A URL without node IDs yields an empty slice, not an error.
func ExtractNodeIDs(figmaURL string) []string {
	matches := nodeIDParamRegex.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return nil
	}

	var ids []string
	for _, part := range strings.Split(matches[1], ",") {
		id := strings.TrimSpace(part)
		if id == "" {
			continue
		}
		// The share UI URL-encodes "123:456" as "123-456".
		ids = append(ids, strings.Replace(id, "-", ":", 1))
	}
	return dedupe(ids)
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
