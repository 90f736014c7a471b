package leaderboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ConvexStore keeps the board in a Convex deployment, reached through its HTTP function API.
// The deployment is expected to expose a `kv:get` query and a `kv:set` mutation keyed by name.
type ConvexStore struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// convexRequest is the request body for the Convex HTTP API
type convexRequest struct {
	Path   string         `json:"path"`
	Args   map[string]any `json:"args"`
	Format string         `json:"format"`
}

// convexResponse is the response body from the Convex HTTP API
type convexResponse struct {
	Status string          `json:"status"`
	Value  json.RawMessage `json:"value"`
	Error  *string         `json:"errorMessage,omitempty"`
}

// NewConvexStore creates a store talking to the deployment at deploymentURL.
func NewConvexStore(deploymentURL, key string) *ConvexStore {
	if key == "" {
		key = DefaultKey
	}
	return &ConvexStore{
		baseURL: strings.TrimRight(deploymentURL, "/"),
		key:     key,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *ConvexStore) Read() (string, error) {
	value, err := c.call("query", "kv:get", map[string]any{"key": c.key})
	if err != nil {
		return "", err
	}
	// Missing keys come back as null
	if len(value) == 0 || string(value) == "null" {
		return "", nil
	}
	var text string
	if err := json.Unmarshal(value, &text); err != nil {
		return "", fmt.Errorf("failed to parse kv:get value: %w", err)
	}
	return text, nil
}

func (c *ConvexStore) Write(text string) error {
	_, err := c.call("mutation", "kv:set", map[string]any{"key": c.key, "value": text})
	return err
}

// call executes a Convex query or mutation and returns the raw value.
func (c *ConvexStore) call(kind, functionPath string, args map[string]any) (json.RawMessage, error) {
	jsonData, err := json.Marshal(convexRequest{
		Path:   functionPath,
		Args:   args,
		Format: "json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s", c.baseURL, kind)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("convex API error (status %d): %s", resp.StatusCode, string(body))
	}

	var convexResp convexResponse
	if err := json.Unmarshal(body, &convexResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if convexResp.Status != "success" {
		errMsg := "unknown error"
		if convexResp.Error != nil {
			errMsg = *convexResp.Error
		}
		return nil, fmt.Errorf("convex %s %s failed: %s", kind, functionPath, errMsg)
	}
	return convexResp.Value, nil
}
