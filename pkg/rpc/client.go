package rpc

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ContractCaller performs read-only calls against contract state.
type ContractCaller interface {
	// CallContract executes an eth_call. A nil blockNumber reads the latest state.
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// LogWatcher opens live log feeds.
type LogWatcher interface {
	// WatchLogs delivers every log emitted by address to sink, in emission order,
	// until the returned subscription is unsubscribed or fails.
	WatchLogs(ctx context.Context, address common.Address, sink chan<- types.Log) (ethereum.Subscription, error)
}

// EthClient defines the chain connector used by the relay.
// This abstraction allows for easier testing and alternative implementations.
type EthClient interface {
	ContractCaller
	LogWatcher

	// Close closes the RPC client connection.
	Close()

	// GetLogs retrieves logs matching the given filter query.
	GetLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// BlockNumber returns the most recent block number.
	BlockNumber(ctx context.Context) (uint64, error)
}
