package api

import (
	"time"

	"github.com/goran-ethernal/ChainRelay/internal/journal"
	pkgsub "github.com/goran-ethernal/ChainRelay/pkg/subscription"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	// Status is "ok", or "degraded" when at least one subscription failed
	Status        string         `json:"status"`
	Timestamp     time.Time      `json:"timestamp"`
	Subscriptions map[string]int `json:"subscriptions"`
}

// SubscriptionsResponse lists every contract being watched.
type SubscriptionsResponse struct {
	Subscriptions []pkgsub.Subscription `json:"subscriptions"`
	Total         int                   `json:"total"`
}

// FailuresResponse lists the most recent failed store operations.
type FailuresResponse struct {
	Failures []*journal.Entry `json:"failures"`
	Limit    int              `json:"limit"`
}
