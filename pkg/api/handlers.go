package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/goran-ethernal/ChainRelay/internal/journal"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	pkgsub "github.com/goran-ethernal/ChainRelay/pkg/subscription"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// FailureLister reads recorded store failures, most recent first.
type FailureLister interface {
	List(ctx context.Context, limit int) ([]*journal.Entry, error)
}

// Handler handles HTTP requests for the API.
type Handler struct {
	registry pkgsub.Registry
	failures FailureLister
	log      *logger.Logger

	now func() time.Time
}

// NewHandler creates a new API handler. failures may be nil when the journal is disabled.
func NewHandler(registry pkgsub.Registry, failures FailureLister, log *logger.Logger) *Handler {
	return &Handler{
		registry: registry,
		failures: failures,
		log:      log,
		now:      time.Now,
	}
}

// Health reports the relay status.
// @Summary Health check
// @Description Subscription counts by state. Status is degraded when any subscription failed
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Relay status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int{
		pkgsub.StatePending.String(): 0,
		pkgsub.StateActive.String():  0,
		pkgsub.StateFailed.String():  0,
	}

	for _, sub := range h.registry.Subscriptions() {
		counts[sub.State.String()]++
	}

	status := statusOK
	if counts[pkgsub.StateFailed.String()] > 0 {
		status = statusDegraded
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:        status,
		Timestamp:     h.now().UTC(),
		Subscriptions: counts,
	})
}

// ListSubscriptions returns every contract subscription.
// @Summary List subscriptions
// @Description Every watched contract with its kind and state, oldest first
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} SubscriptionsResponse "List of subscriptions"
// @Router /subscriptions [get]
func (h *Handler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs := h.registry.Subscriptions()
	if subs == nil {
		subs = []pkgsub.Subscription{}
	}

	respondJSON(w, http.StatusOK, SubscriptionsResponse{
		Subscriptions: subs,
		Total:         len(subs),
	})
}

// ListFailures returns the most recent failed store operations.
// @Summary List failed store operations
// @Description Failed submissions recorded by the journal, most recent first
// @Tags Failures
// @Produce json
// @Param limit query int false "Maximum number of entries to return" default(100)
// @Success 200 {object} FailuresResponse "List of failures"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Journal disabled"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /failures [get]
func (h *Handler) ListFailures(w http.ResponseWriter, r *http.Request) {
	if h.failures == nil {
		respondError(w, http.StatusNotFound, "failure journal is disabled")
		return
	}

	limit := journal.DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid limit: must be a positive integer")
			return
		}
		limit = min(parsed, journal.MaxListLimit)
	}

	entries, err := h.failures.List(r.Context(), limit)
	if err != nil {
		h.log.Errorf("failed to list journal entries: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to list failures")
		return
	}
	if entries == nil {
		entries = []*journal.Entry{}
	}

	respondJSON(w, http.StatusOK, FailuresResponse{Failures: entries, Limit: limit})
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")

	// encode first so a failure can still change the status
	encoded, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}
