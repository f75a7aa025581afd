package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
)

// State is the lifecycle state of a subscription.
type State uint8

const (
	StatePending State = iota
	StateActive
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// MarshalText renders the state by name for JSON responses.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Subscription is a snapshot of one watched (address, kind) pair.
type Subscription struct {
	Address   common.Address `json:"address"`
	Kind      contracts.Kind `json:"kind"`
	State     State          `json:"state"`
	Error     string         `json:"error,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Watcher registers contracts for live event delivery.
type Watcher interface {
	// Watch ensures a subscription exists for the address and kind and returns it.
	// Calling it again for the same pair returns the existing subscription whatever its state.
	Watch(ctx context.Context, address common.Address, kind contracts.Kind) Subscription
}

// Registry exposes the current set of subscriptions.
type Registry interface {
	Subscriptions() []Subscription
}
