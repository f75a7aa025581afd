package contracts

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrRemovedLog is returned for logs that were reverted by a reorg.
	ErrRemovedLog = errors.New("log was removed")

	// ErrMissingTopics is returned for logs without a signature topic.
	ErrMissingTopics = errors.New("log has no topics")
)

// DecodeError indicates a log could not be decoded against its contract ABI.
type DecodeError struct {
	Address  common.Address
	Kind     Kind
	TxHash   common.Hash
	LogIndex uint
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s log %s:%d from %s: %v",
		e.Kind, e.TxHash.Hex(), e.LogIndex, e.Address.Hex(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
