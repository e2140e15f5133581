package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Options configures the shared gateway transport.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RetryMax  int
	RetryWait time.Duration
}

// Client is the shared HTTP transport behind every entity gateway.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *logger.Logger
}

// NewClient creates the shared transport. Only GET requests are ever
// retried: reads are idempotent, mutations must stay single-shot.
func NewClient(opts Options, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	if opts.RetryWait > 0 {
		rc.RetryWaitMin = opts.RetryWait
		rc.RetryWaitMax = 4 * opts.RetryWait
	}
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	} else {
		rc.HTTPClient.Timeout = 30 * time.Second
	}
	rc.Logger = nil

	defaultPolicy := rc.CheckRetry
	rc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && resp.Request != nil && resp.Request.Method != http.MethodGet {
			return false, nil
		}
		return defaultPolicy(ctx, resp, err)
	}

	return &Client{
		baseURL: opts.BaseURL,
		http:    rc,
		logger:  log,
	}
}

// send issues a request and decodes the response into out. Any
// outcome other than wantStatus becomes an AppError: 404 maps to
// NOT_FOUND, everything else to TRANSPORT_ERROR.
func (c *Client) send(ctx context.Context, op, method, url string, bodyData any, wantStatus int, out any) error {
	var body io.Reader

	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return domain.NewTransportError(op, fmt.Errorf("marshal request body: %w", err))
		}
		body = bytes.NewReader(jsonBytes)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return domain.NewTransportError(op, fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("Gateway request failed",
			zap.String("operation", op),
			zap.Error(err))
		return domain.NewTransportError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewTransportError(op, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.NewAppError(domain.ErrCodeNotFound,
			fmt.Sprintf("%s: record not found", op), http.StatusNotFound, nil)
	}

	if resp.StatusCode != wantStatus {
		c.logger.Warn("Gateway request returned unexpected status",
			zap.String("operation", op),
			zap.Int("status", resp.StatusCode))
		return domain.NewAppError(domain.ErrCodeTransport,
			fmt.Sprintf("Remote call '%s' failed with status %d", op, resp.StatusCode),
			resp.StatusCode, fmt.Errorf("server said: %s", string(respBody)))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return domain.NewDecodeError(op, err)
		}
	}

	return nil
}

func (c *Client) url(parts string) string {
	return c.baseURL + "/api/" + parts
}
