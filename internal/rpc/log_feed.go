package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
)

const defaultPollInterval = 2 * time.Second

// logSource is the part of the client the poller reads from.
type logSource interface {
	GetLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// newLogPoller emulates a log subscription over request/response transports.
// Only blocks after the head observed at creation are reported.
// Transient poll failures are logged and the range is retried on the next tick.
func newLogPoller(ctx context.Context, src logSource, address common.Address, interval time.Duration,
	ch chan<- types.Log, log *logger.Logger) (ethereum.Subscription, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	head, err := src.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read head block: %w", err)
	}

	next := head + 1

	return event.NewSubscription(func(quit <-chan struct{}) error {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return nil
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}

			latest, err := src.BlockNumber(ctx)
			if err != nil {
				log.Warnw("failed to read head block while polling", "address", address.Hex(), "error", err)
				continue
			}
			if latest < next {
				continue
			}

			logs, err := src.GetLogs(ctx, ethereum.FilterQuery{
				FromBlock: new(big.Int).SetUint64(next),
				ToBlock:   new(big.Int).SetUint64(latest),
				Addresses: []common.Address{address},
			})
			if err != nil {
				log.Warnw("failed to poll logs", "address", address.Hex(),
					"from", next, "to", latest, "error", err)
				continue
			}

			for _, l := range logs {
				select {
				case ch <- l:
				case <-quit:
					return nil
				case <-ctx.Done():
					return nil
				}
			}

			next = latest + 1
		}
	}), nil
}
