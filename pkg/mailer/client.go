package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.brevo.com/v3"

// Email is the single operation the notification collaborator understands.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Sender abstracts the transactional-email provider so fanout code can be
// exercised without the real API.
type Sender interface {
	Send(ctx context.Context, email Email) error
	Configured() bool
}

// Client delivers transactional email through the Brevo REST API. It is an
// explicitly constructed, injected dependency: when the API key is absent
// the client stays alive but reports itself unconfigured, and every send
// short-circuits for the lifetime of the process.
type Client struct {
	apiKey   string
	from     string
	fromName string
	baseURL  string
	client   *http.Client
}

func NewClient(apiKey, fromEmail, fromName string) *Client {
	if strings.TrimSpace(fromEmail) == "" {
		fromEmail = "noreply@quickblog.com"
	}

	if strings.TrimSpace(fromName) == "" {
		fromName = "QuickBlog"
	}

	return &Client{
		apiKey:   strings.TrimSpace(apiKey),
		from:     fromEmail,
		fromName: fromName,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// WithBaseURL points the client at a different API host. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")

	return c
}

func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type sendPayload struct {
	Sender      sendParty   `json:"sender"`
	To          []sendParty `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type sendParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (c *Client) Send(ctx context.Context, email Email) error {
	if !c.Configured() {
		return fmt.Errorf("email service not configured")
	}

	payload := sendPayload{
		Sender:      sendParty{Name: c.fromName, Email: c.from},
		To:          []sendParty{{Email: email.To}},
		Subject:     email.Subject,
		HTMLContent: email.HTML,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
