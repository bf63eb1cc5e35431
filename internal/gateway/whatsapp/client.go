package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const messagesPath = "/v1/messages"

type Config struct {
	BaseURL string
	Token   string
}

// Client talks to the WhatsApp Business API. No retries here,
// notifications are fire-and-forget and losing one is acceptable.
type Client struct {
	client httpClient
	config Config
}

func NewClient(client httpClient, config Config) *Client {
	return &Client{
		client: client,
		config: config,
	}
}

type messageBody struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

func (c *Client) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(messageBody{
		MessagingProduct: "whatsapp",
		To:               FormatPhone(phone),
		Type:             "text",
		Text:             textBody{Body: message},
	})
	if err != nil {
		return fmt.Errorf("gateway whatsapp, marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("gateway whatsapp, build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		MessagesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("gateway whatsapp, send message: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	SendDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		MessagesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("gateway whatsapp, unexpected status %d", resp.StatusCode)
	}

	MessagesTotal.WithLabelValues("ok").Inc()
	return nil
}
