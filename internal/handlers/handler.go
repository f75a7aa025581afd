package handlers

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
	"github.com/goran-ethernal/ChainRelay/pkg/subscription"
)

// Input is everything a handler may use to translate one event.
type Input struct {
	Event contracts.DecodedEvent

	// Watcher registers contracts announced by the event
	Watcher subscription.Watcher

	// Caller binds handles to contracts announced by the event
	Caller pkgrpc.ContractCaller

	// Source is the emitting contract. Only set for sale machine events.
	Source *contracts.Handle
}

// Handler translates a decoded event into store operations.
// Auxiliary reads are awaited before the operations are built.
type Handler func(ctx context.Context, in Input) ([]pkgrelay.Operation, error)

// Table routes events to their handlers, per contract kind.
type Table struct {
	handlers map[contracts.Kind]map[contracts.EventType]Handler
}

// NewTable builds the routing table for every supported kind.
func NewTable() *Table {
	t := &Table{handlers: make(map[contracts.Kind]map[contracts.EventType]Handler, len(contracts.AllKinds))}

	for _, kind := range contracts.AllKinds {
		events := contracts.EventsOf(kind)
		t.handlers[kind] = make(map[contracts.EventType]Handler, len(events))

		for _, event := range events {
			if h := handlerFor(event); h != nil {
				t.handlers[kind][event] = h
			}
		}
	}

	return t
}

// Lookup returns the handler of an event emitted by a contract of the given kind.
func (t *Table) Lookup(kind contracts.Kind, event contracts.EventType) (Handler, bool) {
	h, ok := t.handlers[kind][event]
	return h, ok
}

func handlerFor(event contracts.EventType) Handler {
	switch event {
	case contracts.EventWhitelistDeployed:
		return handleWhitelistDeployed
	case contracts.EventCoinMachineDeployed:
		return handleCoinMachineDeployed
	case contracts.EventUserApproved:
		return handleUserApproved
	case contracts.EventAgreementSigned:
		return handleAgreementSigned
	case contracts.EventCoinMachineInitialised:
		return handleCoinMachineInitialised
	case contracts.EventCoinMachineStateSet:
		return handleCoinMachineStateSet
	case contracts.EventTokensBought:
		return handleTokensBought
	case contracts.EventUnknown:
		return nil
	default:
		panic(fmt.Sprintf("no handler for event %s", event))
	}
}
