package line

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mitsuba/clubport/internal/domain"
	"github.com/mitsuba/clubport/internal/port"
)

const (
	defaultEndpoint = "https://api.line.me"
	broadcastPath   = "/v2/bot/message/broadcast"
	multicastPath   = "/v2/bot/message/multicast"
)

// Client talks to the LINE Messaging API. One delivery is one POST; there
// is no retry.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
}

type Option func(*Client)

func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		token:    token,
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type broadcastPayload struct {
	Messages []flexMessage `json:"messages"`
}

type multicastPayload struct {
	To       []string      `json:"to"`
	Messages []flexMessage `json:"messages"`
}

func (c *Client) Broadcast(ctx context.Context, msg domain.PushMessage) error {
	return c.post(ctx, broadcastPath, broadcastPayload{Messages: []flexMessage{toFlex(msg)}})
}

func (c *Client) Multicast(ctx context.Context, to []string, msg domain.PushMessage) error {
	return c.post(ctx, multicastPath, multicastPayload{To: to, Messages: []flexMessage{toFlex(msg)}})
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send push request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil || len(raw) == 0 || !json.Valid(raw) {
		raw, _ = json.Marshal(map[string]string{"message": http.StatusText(res.StatusCode)})
	}
	return &port.PushProviderError{StatusCode: res.StatusCode, Body: raw}
}

var _ port.PushClient = (*Client)(nil)
