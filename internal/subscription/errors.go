package subscription

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
)

var errManagerClosed = errors.New("subscription manager closed")

// SubscriptionError indicates the log feed of a contract could not be opened or failed.
// The contract stays unwatched for the rest of the run.
type SubscriptionError struct { //nolint:revive
	Address common.Address
	Kind    contracts.Kind
	Err     error
}

func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("subscription to %s %s failed: %v", e.Kind, e.Address.Hex(), e.Err)
}

func (e *SubscriptionError) Unwrap() error {
	return e.Err
}
