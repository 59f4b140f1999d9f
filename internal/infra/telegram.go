package infra

// telegram.go — Telegram Bot API client used by the notification worker.
// All calls go through the circuit breaker: when Telegram is unreachable the
// worker fast-fails instead of holding goroutines on dead connections.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

var ErrTelegramDeshabilitado = errors.New("telegram no configurado")

// TelegramClient posts messages to a fixed chat via the Bot API.
type TelegramClient struct {
	httpClient *http.Client
	baseURL    string
	token      string
	chatID     string
	cb         *CircuitBreaker
}

func NewTelegramClient(token, chatID string) *TelegramClient {
	return &TelegramClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    telegramAPIBase,
		token:      token,
		chatID:     chatID,
		cb:         NewCircuitBreaker(DefaultCBConfig()),
	}
}

// Enabled reports whether a bot token is configured; without one every send
// is a silent no-op at the worker.
func (c *TelegramClient) Enabled() bool { return c.token != "" && c.chatID != "" }

// SendMessage posts a Markdown message to the configured chat.
func (c *TelegramClient) SendMessage(ctx context.Context, text string) error {
	if !c.Enabled() {
		return ErrTelegramDeshabilitado
	}
	return c.cb.Execute(func() error {
		return c.sendMessage(ctx, text)
	})
}

func (c *TelegramClient) sendMessage(ctx context.Context, text string) error {
	payload, err := json.Marshal(map[string]string{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram: sendMessage status %d: %s", resp.StatusCode, body)
	}
	return nil
}
