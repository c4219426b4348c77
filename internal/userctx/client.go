package userctx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"merval-chat-service/internal/model"
	"merval-chat-service/pkg/log"
)

const defaultTimeout = 5 * time.Second

// Config holds backend client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client fetches user data from the main platform backend. The user's own
// bearer token is forwarded, so the client only sees what the user may see.
type Client struct {
	l       log.Logger
	baseURL string
	client  *http.Client
}

// NewClient creates a backend client.
func NewClient(l log.Logger, cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		l:       l,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Fetch assembles the user context from the backend. The profile endpoint
// is required; preferences, favorites and portfolio are best-effort and
// simply stay empty when their endpoints fail.
func (c *Client) Fetch(ctx context.Context, userID, bearerToken string) *model.UserContext {
	var profile model.UserProfile
	if err := c.getJSON(ctx, "/api/users/"+userID, bearerToken, &profile); err != nil {
		c.l.Warnf(ctx, "userctx.Client.Fetch: profile unavailable for %s: %v", userID, err)
		return nil
	}

	uc := &model.UserContext{Profile: &profile}

	var prefs model.UserPreferences
	if err := c.getJSON(ctx, "/api/users/"+userID+"/preferences", bearerToken, &prefs); err == nil {
		uc.Preferences = &prefs
	}

	var favorites []string
	if err := c.getJSON(ctx, "/api/users/"+userID+"/favorites", bearerToken, &favorites); err == nil {
		uc.Favorites = favorites
	}

	var portfolio model.Portfolio
	if err := c.getJSON(ctx, "/api/users/"+userID+"/portfolio", bearerToken, &portfolio); err == nil {
		uc.Portfolio = &portfolio
	}

	return uc
}

func (c *Client) getJSON(ctx context.Context, path, bearerToken string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
