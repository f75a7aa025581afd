package relay

import "context"

// Operation is one named request to the downstream store.
type Operation struct {
	// Name is the GraphQL operation name, e.g. "CreateWhitelist"
	Name string `json:"operationName"`

	// Query is the GraphQL document
	Query string `json:"query"`

	// Variables holds the operation parameters. Numeric amounts are decimal strings.
	Variables map[string]any `json:"variables,omitempty"`
}

// Client submits operations to the downstream store.
// Implementations hold no state across calls and are safe for concurrent use.
type Client interface {
	// Submit performs a single write. A failure is returned as is and never retried.
	Submit(ctx context.Context, op Operation) error

	// Query performs a single read and returns the raw response body.
	Query(ctx context.Context, op Operation) ([]byte, error)
}

// FailureRecorder is notified about every failed submission.
type FailureRecorder interface {
	RecordFailure(ctx context.Context, op Operation, cause error)
}
