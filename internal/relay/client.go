package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goran-ethernal/ChainRelay/internal/logger"
	"github.com/goran-ethernal/ChainRelay/pkg/config"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"github.com/tidwall/gjson"
)

const apiKeyHeader = "x-api-key"

var (
	errInvalidResponse = errors.New("response is not valid JSON")
	errStoreErrors     = errors.New("store reported errors")
)

// Compile-time check to ensure Client implements pkgrelay.Client interface.
var _ pkgrelay.Client = (*Client)(nil)

// Client posts GraphQL operations to the downstream store.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client

	failures pkgrelay.FailureRecorder
	log      *logger.Logger
}

// NewClient creates a store client. failures may be nil.
func NewClient(cfg config.StoreConfig, failures pkgrelay.FailureRecorder, log *logger.Logger) *Client {
	return &Client{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout.Duration},
		failures: failures,
		log:      log,
	}
}

// Submit sends a write operation. Failures are logged, reported to the failure
// recorder and returned as *RelayError.
func (c *Client) Submit(ctx context.Context, op pkgrelay.Operation) error {
	start := time.Now()
	_, err := c.do(ctx, op)
	observeSubmission(op.Name, start, err)

	if err != nil {
		c.log.Errorw("failed to relay operation", "operation", op.Name, "error", err)

		if c.failures != nil {
			c.failures.RecordFailure(context.WithoutCancel(ctx), op, err)
		}
		return err
	}

	return nil
}

// Query sends a read operation and returns the response body.
func (c *Client) Query(ctx context.Context, op pkgrelay.Operation) ([]byte, error) {
	start := time.Now()
	body, err := c.do(ctx, op)
	observeSubmission(op.Name, start, err)

	return body, err
}

func (c *Client) do(ctx context.Context, op pkgrelay.Operation) ([]byte, error) {
	inFlight.Inc()
	defer inFlight.Dec()

	payload, err := json.Marshal(op)
	if err != nil {
		return nil, &RelayError{Operation: op.Name, Err: fmt.Errorf("failed to encode operation: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &RelayError{Operation: op.Name, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RelayError{Operation: op.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RelayError{Operation: op.Name, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &RelayError{
			Operation:  op.Name,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", truncate(body, 256)),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &RelayError{Operation: op.Name, StatusCode: resp.StatusCode, Err: errInvalidResponse}
	}

	if errs := gjson.GetBytes(body, "errors"); errs.IsArray() && len(errs.Array()) > 0 {
		var messages []string
		for _, e := range errs.Array() {
			if msg := e.Get("message"); msg.Exists() {
				messages = append(messages, msg.String())
			} else {
				messages = append(messages, e.Raw)
			}
		}

		return nil, &RelayError{
			Operation:  op.Name,
			StatusCode: resp.StatusCode,
			Messages:   messages,
			Err:        errStoreErrors,
		}
	}

	return body, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
