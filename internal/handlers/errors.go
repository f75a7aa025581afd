package handlers

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var errMissingSource = errors.New("event has no source contract handle")

// AuxiliaryReadError indicates an on-chain read needed by a handler failed.
// The event's operations are abandoned.
type AuxiliaryReadError struct {
	Address common.Address
	Method  string
	Err     error
}

func (e *AuxiliaryReadError) Error() string {
	return fmt.Sprintf("auxiliary read %s on %s failed: %v", e.Method, e.Address.Hex(), e.Err)
}

func (e *AuxiliaryReadError) Unwrap() error {
	return e.Err
}
