package rpc

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	"github.com/goran-ethernal/ChainRelay/pkg/config"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
)

const (
	feedModeSubscription = "subscription"
	feedModePolling      = "polling"
)

// Compile-time check to ensure Client implements pkgrpc.EthClient interface.
var _ pkgrpc.EthClient = (*Client)(nil)

// Client wraps the Ethereum RPC client with the calls the relay needs.
// It implements the pkgrpc.EthClient interface.
type Client struct {
	eth *ethclient.Client
	rpc *rpc.Client

	pollInterval time.Duration
	log          *logger.Logger
}

// NewClient connects to the configured endpoint and verifies it by reading the chain id.
// Connection attempts are retried according to cfg.Retry.
func NewClient(ctx context.Context, cfg config.ChainConfig, log *logger.Logger) (*Client, error) {
	var rpcClient *rpc.Client
	err := retryWithBackoff(ctx, cfg.Retry, "dial", func() error {
		c, err := rpc.DialContext(ctx, cfg.RPCURL)
		if err != nil {
			return err
		}
		rpcClient = c
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.RPCURL, err)
	}

	client := newClient(rpcClient, cfg.PollInterval.Duration, log)

	var chainID *big.Int
	err = retryWithBackoff(ctx, cfg.Retry, "eth_chainId", func() error {
		id, err := client.eth.ChainID(ctx)
		if err != nil {
			return err
		}
		chainID = id
		return nil
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to read chain id from %s: %w", cfg.RPCURL, err)
	}

	log.Infow("connected to chain", "endpoint", cfg.RPCURL, "chain_id", chainID)

	return client, nil
}

func newClient(rpcClient *rpc.Client, pollInterval time.Duration, log *logger.Logger) *Client {
	return &Client{
		eth:          ethclient.NewClient(rpcClient),
		rpc:          rpcClient,
		pollInterval: pollInterval,
		log:          log,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// CallContract executes a read-only call against the latest state (blockNumber nil).
func (c *Client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	start := time.Now()
	out, err := c.eth.CallContract(ctx, msg, blockNumber)
	observe("eth_call", start, err)

	return out, err
}

// GetLogs retrieves logs matching the given filter query.
func (c *Client) GetLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	start := time.Now()
	logs, err := c.eth.FilterLogs(ctx, query)
	observe("eth_getLogs", start, err)

	return logs, err
}

// BlockNumber returns the most recent block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	start := time.Now()
	num, err := c.eth.BlockNumber(ctx)
	observe("eth_blockNumber", start, err)

	return num, err
}

// WatchLogs streams new logs emitted by address into ch.
// Push subscriptions are used when the endpoint supports them; otherwise the
// address is polled every pollInterval starting after the current head.
// Logs are delivered in chain order. The returned subscription reports a
// failure of the underlying feed on its Err channel.
func (c *Client) WatchLogs(ctx context.Context, address common.Address,
	ch chan<- types.Log) (ethereum.Subscription, error) {
	query := ethereum.FilterQuery{Addresses: []common.Address{address}}

	start := time.Now()
	sub, err := c.eth.SubscribeFilterLogs(ctx, query, ch)
	observe("eth_subscribe", start, err)
	if err == nil {
		return trackFeed(sub, feedModeSubscription), nil
	}

	if !isNotificationsUnsupported(err) {
		return nil, err
	}

	c.log.Debugw("endpoint does not support subscriptions, polling logs",
		"address", address.Hex(), "interval", c.pollInterval)

	sub, err = newLogPoller(ctx, c, address, c.pollInterval, ch, c.log)
	if err != nil {
		return nil, err
	}

	return trackFeed(sub, feedModePolling), nil
}

// feed keeps the active feed gauge in sync with the subscription lifetime.
type feed struct {
	ethereum.Subscription

	mode string
	once sync.Once
}

func trackFeed(sub ethereum.Subscription, mode string) *feed {
	feedOpened(mode)
	return &feed{Subscription: sub, mode: mode}
}

func (f *feed) Unsubscribe() {
	f.Subscription.Unsubscribe()
	f.once.Do(func() { feedClosed(f.mode) })
}
