package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client implements IOpenAI against the OpenAI REST API.
type Client struct {
	apiKey      string
	model       string
	assistantID string
	baseURL     string
	client      *http.Client
}

// New creates a new OpenAI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	return &Client{
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		assistantID: cfg.AssistantID,
		baseURL:     cfg.BaseURL,
		client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}, nil
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// Model returns the configured completion model.
func (c *Client) Model() string {
	return c.model
}

// CreateCompletion sends a request to /chat/completions.
func (c *Client) CreateCompletion(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if req.Model == "" {
		req.Model = c.model
	}

	var result CompletionResponse
	if err := c.do(ctx, http.MethodPost, "/chat/completions", req, &result, false); err != nil {
		return nil, err
	}
	return &result, nil
}

// Status probes the API: a minimal completion checks the key and model, an
// assistant retrieval checks the pre-provisioned assistant. Both probes are
// best-effort; failures only flip the corresponding flags.
func (c *Client) Status(ctx context.Context) Status {
	st := Status{Configured: true}

	probe := &CompletionRequest{
		Model:     c.model,
		Messages:  []Message{{Role: "user", Content: "test"}},
		MaxTokens: 5,
	}
	if _, err := c.CreateCompletion(ctx, probe); err == nil {
		st.Available = true
	}

	if c.assistantID != "" {
		var out struct {
			ID string `json:"id"`
		}
		if err := c.do(ctx, http.MethodGet, "/assistants/"+c.assistantID, nil, &out, true); err == nil {
			st.AssistantAvailable = true
		}
	}

	return st
}

// do performs one JSON round trip against the API. beta adds the Assistants
// beta header required by thread/run/assistant endpoints.
func (c *Client) do(ctx context.Context, method, path string, in, out any, beta bool) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if beta {
		httpReq.Header.Set("OpenAI-Beta", assistantsBetaHeader)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return fmt.Errorf("API error %d: %s", resp.StatusCode, string(respBody))
		}
		return fmt.Errorf("API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
