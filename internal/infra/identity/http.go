package identity

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark47B/iam-service/internal/domain/repository"
)

var _ repository.IdentityProvider = (*HTTPClient)(nil)

// StatusError — провайдер ответил не 2xx
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("identity provider responded %d: %s", e.Code, e.Body)
}

// HTTPClient ходит в admin API провайдера:
// POST {base}/v1/accounts/{uid}:enable и POST {base}/v1/accounts/{uid}:disable
type HTTPClient struct {
	baseURL string
	token   string
	client  *http.Client
	log     *slog.Logger
}

func NewHTTPClient(baseURL, token string, timeout time.Duration, log *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Enable(ctx context.Context, authenticationUID string) error {
	return c.post(ctx, authenticationUID, "enable")
}

func (c *HTTPClient) Disable(ctx context.Context, authenticationUID string) error {
	return c.post(ctx, authenticationUID, "disable")
}

func (c *HTTPClient) post(ctx context.Context, uid, action string) error {
	endpoint := fmt.Sprintf("%s/v1/accounts/%s:%s", c.baseURL, url.PathEscape(uid), action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", action, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s account %s: %w", action, uid, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("closing identity provider response", slog.Any("error", err))
		}
	}()

	c.log.Debug("identity provider call",
		slog.String("action", action),
		slog.String("authentication_uid", uid),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	return nil
}
