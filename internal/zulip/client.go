// Package zulip is a minimal client for the Zulip stream-message API.
package zulip

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client posts messages to a Zulip server as a bot identity.
type Client struct {
	serverURL  string
	botEmail   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client with a configured HTTP timeout. serverURL
// is the base URL of the Zulip server, e.g. https://chat.example.com.
func NewClient(serverURL, botEmail, apiKey string) *Client {
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		botEmail:  botEmail,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SendMessage posts a message to a stream. The request is form-encoded
// and authenticated with basic auth as the Zulip API requires. A non-2xx
// response comes back as an error carrying the status and response body;
// there is no retry.
func (c *Client) SendMessage(ctx context.Context, channel, topic, content string) error {
	form := url.Values{
		"type":    {"stream"},
		"to":      {channel},
		"topic":   {topic},
		"content": {content},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.serverURL+"/api/v1/messages", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("building zulip request: %w", err)
	}
	req.SetBasicAuth(c.botEmail, c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to zulip: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Limit the body read; Zulip error responses are small JSON.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("zulip returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
