package subscription

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/dispatcher"
	"github.com/goran-ethernal/ChainRelay/internal/handlers"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
	pkgsub "github.com/goran-ethernal/ChainRelay/pkg/subscription"
)

// logBuffer is the capacity of the channel between a feed and its dispatch loop.
const logBuffer = 128

// Compile-time checks.
var (
	_ pkgsub.Watcher  = (*Manager)(nil)
	_ pkgsub.Registry = (*Manager)(nil)
)

// Chain is the part of the chain connector the manager needs.
type Chain interface {
	pkgrpc.ContractCaller
	pkgrpc.LogWatcher
}

type key struct {
	address common.Address
	kind    contracts.Kind
}

type entry struct {
	sub  pkgsub.Subscription
	feed ethereum.Subscription
}

// Manager owns the set of watched contracts and their log feeds.
// At most one subscription exists per (address, kind); subscriptions are
// never removed during a run and failed ones are not retried.
type Manager struct {
	factory    common.Address
	chain      Chain
	relay      pkgrelay.Client
	dispatcher *dispatcher.Dispatcher
	log        *logger.Logger

	mu   sync.Mutex
	subs map[key]*entry

	// feeds and dispatch loops live until Close, independent of the caller
	// that registered them
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates a manager for the contract family rooted at factory.
func NewManager(
	factory common.Address,
	chain Chain,
	relay pkgrelay.Client,
	decoder *contracts.Decoder,
	log *logger.Logger,
	dispatchLog *logger.Logger,
) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		factory: factory,
		chain:   chain,
		relay:   relay,
		log:     log,
		subs:    make(map[key]*entry),
		ctx:     ctx,
		cancel:  cancel,
	}

	m.dispatcher = dispatcher.New(decoder, handlers.NewTable(), relay, m, chain, dispatchLog)

	return m
}

// Start bootstraps the known contracts from the store, watches them and then
// watches the factory. Only a failure to watch the factory is returned.
func (m *Manager) Start(ctx context.Context) error {
	targets := m.Bootstrap(ctx)

	for _, t := range targets {
		m.Watch(ctx, t.Address, t.Kind)
	}

	sub := m.Watch(ctx, m.factory, contracts.KindFactory)
	if sub.State == pkgsub.StateFailed {
		return &SubscriptionError{Address: m.factory, Kind: contracts.KindFactory, Err: fmt.Errorf("%s", sub.Error)}
	}

	m.log.Infow("relay started",
		"factory", m.factory.Hex(),
		"bootstrapped", len(targets),
	)

	return nil
}

// Watch ensures the contract is subscribed. The first caller for an
// (address, kind) pair opens the feed; later callers get the existing record
// in whatever state it is.
func (m *Manager) Watch(ctx context.Context, address common.Address, kind contracts.Kind) pkgsub.Subscription {
	k := key{address: address, kind: kind}

	m.mu.Lock()
	if e, ok := m.subs[k]; ok {
		sub := e.sub
		m.mu.Unlock()
		return sub
	}

	e := &entry{sub: pkgsub.Subscription{
		Address:   address,
		Kind:      kind,
		State:     pkgsub.StatePending,
		CreatedAt: time.Now().UTC(),
	}}
	m.subs[k] = e
	transition(kind, nil, pkgsub.StatePending)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return m.fail(k, err)
	}

	logs := make(chan types.Log, logBuffer)
	feed, err := m.chain.WatchLogs(m.ctx, address, logs)
	if err != nil {
		return m.fail(k, err)
	}

	m.mu.Lock()
	// Close may have taken its feed snapshot while WatchLogs was running
	if m.ctx.Err() != nil {
		m.mu.Unlock()
		feed.Unsubscribe()
		return m.fail(k, errManagerClosed)
	}

	e.feed = feed
	e.sub.State = pkgsub.StateActive
	sub := e.sub
	from := pkgsub.StatePending
	transition(kind, &from, pkgsub.StateActive)
	m.wg.Add(1)
	m.mu.Unlock()

	m.log.Infow("watching contract", "address", address.Hex(), "kind", kind)

	go func() {
		defer m.wg.Done()

		if err := m.dispatcher.Run(m.ctx, address, kind, logs, feed); err != nil {
			m.fail(k, err)
		}
	}()

	return sub
}

// fail marks the subscription failed and logs the cause.
func (m *Manager) fail(k key, cause error) pkgsub.Subscription {
	subErr := &SubscriptionError{Address: k.address, Kind: k.kind, Err: cause}
	m.log.Errorw("failed to watch contract", "address", k.address.Hex(), "kind", k.kind, "error", subErr)

	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.subs[k]
	from := e.sub.State
	e.sub.State = pkgsub.StateFailed
	e.sub.Error = cause.Error()
	transition(k.kind, &from, pkgsub.StateFailed)

	return e.sub
}

// Subscriptions returns a snapshot of every subscription, oldest first.
func (m *Manager) Subscriptions() []pkgsub.Subscription {
	m.mu.Lock()
	out := make([]pkgsub.Subscription, 0, len(m.subs))
	for _, e := range m.subs {
		out = append(out, e.sub)
	}
	m.mu.Unlock()

	slices.SortFunc(out, func(a, b pkgsub.Subscription) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return a.Address.Cmp(b.Address)
	})

	return out
}

// Close stops every feed and waits for dispatch loops and in-flight submissions.
func (m *Manager) Close() {
	m.cancel()

	m.mu.Lock()
	feeds := make([]ethereum.Subscription, 0, len(m.subs))
	for _, e := range m.subs {
		if e.feed != nil {
			feeds = append(feeds, e.feed)
		}
	}
	m.mu.Unlock()

	for _, feed := range feeds {
		feed.Unsubscribe()
	}

	m.wg.Wait()
	m.dispatcher.Wait()
}
