package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/handlers"
	"github.com/goran-ethernal/ChainRelay/internal/logger"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
	"github.com/goran-ethernal/ChainRelay/pkg/subscription"
)

// Router resolves the handler of an event. It is satisfied by *handlers.Table.
type Router interface {
	Lookup(kind contracts.Kind, event contracts.EventType) (handlers.Handler, bool)
}

// Dispatcher turns the logs of watched contracts into store operations.
// Logs of one address are handled strictly in order; different addresses
// are handled concurrently. Operations are submitted without waiting for
// each other.
type Dispatcher struct {
	decoder *contracts.Decoder
	router  Router
	relay   pkgrelay.Client
	watcher subscription.Watcher
	caller  pkgrpc.ContractCaller
	log     *logger.Logger

	inflight sync.WaitGroup
}

// New creates a dispatcher.
func New(
	decoder *contracts.Decoder,
	router Router,
	relay pkgrelay.Client,
	watcher subscription.Watcher,
	caller pkgrpc.ContractCaller,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		decoder: decoder,
		router:  router,
		relay:   relay,
		watcher: watcher,
		caller:  caller,
		log:     log,
	}
}

// Run consumes the logs of one subscription until ctx is done, the log channel
// is closed or the feed fails. A feed failure is returned.
func (d *Dispatcher) Run(ctx context.Context, address common.Address, kind contracts.Kind,
	logs <-chan types.Log, feed ethereum.Subscription) error {
	var source *contracts.Handle
	if kind == contracts.KindSaleMachine {
		h, err := contracts.NewHandle(address, kind, d.caller)
		if err != nil {
			return err
		}
		source = h
	}

	var feedErr <-chan error
	if feed != nil {
		feedErr = feed.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-feedErr:
			if !ok {
				return nil
			}
			return err
		case log, ok := <-logs:
			if !ok {
				return nil
			}
			d.Handle(ctx, kind, source, log)
		}
	}
}

// Handle decodes a single log, runs its handler and submits the resulting operations.
// Failures are logged and never returned: one bad event does not stop the feed.
func (d *Dispatcher) Handle(ctx context.Context, kind contracts.Kind, source *contracts.Handle, log types.Log) {
	event, err := d.decoder.Decode(kind, log)
	if err != nil {
		eventsDropped.WithLabelValues(kind.String(), "decode").Inc()
		d.log.Debugw("dropping undecodable log", "kind", kind, "error", err)
		return
	}

	handler, ok := d.router.Lookup(kind, event.Event)
	if !ok {
		eventsDropped.WithLabelValues(kind.String(), "unhandled").Inc()
		d.log.Debugw("no handler for event",
			"kind", kind,
			"address", log.Address.Hex(),
			"topic", log.Topics[0].Hex(),
		)
		return
	}

	start := time.Now()
	ops, err := handler(ctx, handlers.Input{
		Event:   event,
		Watcher: d.watcher,
		Caller:  d.caller,
		Source:  source,
	})
	observeHandler(event.Name, start)

	if err != nil {
		handlerErrors.WithLabelValues(kind.String(), event.Name).Inc()
		d.log.Errorw("failed to handle event",
			"event", event.Name,
			"address", event.Address.Hex(),
			"tx", event.TxHash.Hex(),
			"error", err,
		)
		return
	}

	for _, op := range ops {
		d.submit(ctx, op)
	}

	eventsRouted.WithLabelValues(kind.String(), event.Name).Inc()
	d.log.Infow("database updated after event "+event.Name,
		"address", event.Address.Hex(),
		"block", event.BlockNumber,
		"operations", len(ops),
	)
}

// submit hands the operation to the relay client without waiting for it.
// Submissions outlive the dispatch context so shutdown can drain them.
func (d *Dispatcher) submit(ctx context.Context, op pkgrelay.Operation) {
	d.inflight.Add(1)
	pendingSubmissions.Inc()

	go func() {
		defer func() {
			pendingSubmissions.Dec()
			d.inflight.Done()
		}()

		// failures are logged and journaled by the relay client
		_ = d.relay.Submit(context.WithoutCancel(ctx), op)
	}()
}

// Wait blocks until every submitted operation has completed.
func (d *Dispatcher) Wait() {
	d.inflight.Wait()
}
