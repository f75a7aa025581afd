package contracts

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// DecodedEvent is a log resolved against the ABI of the contract that emitted it.
type DecodedEvent struct {
	Address     common.Address
	Kind        Kind
	Event       EventType
	Name        string
	Args        map[string]any
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// Decoder resolves raw logs into DecodedEvents.
type Decoder struct {
	abis map[Kind]abi.ABI
}

// NewDecoder creates a decoder for every supported contract kind.
func NewDecoder() (*Decoder, error) {
	abis, err := loadABIs()
	if err != nil {
		return nil, err
	}

	return &Decoder{abis: abis}, nil
}

// Decode matches the log signature against the ABI of kind and unpacks its arguments.
// A signature that is not part of the ABI yields an EventUnknown event and no error.
func (d *Decoder) Decode(kind Kind, log types.Log) (DecodedEvent, error) {
	decoded := DecodedEvent{
		Address:     log.Address,
		Kind:        kind,
		Event:       EventUnknown,
		BlockNumber: log.BlockNumber,
		TxHash:      log.TxHash,
		LogIndex:    log.Index,
	}

	fail := func(err error) (DecodedEvent, error) {
		return decoded, &DecodeError{
			Address:  log.Address,
			Kind:     kind,
			TxHash:   log.TxHash,
			LogIndex: log.Index,
			Err:      err,
		}
	}

	if log.Removed {
		return fail(ErrRemovedLog)
	}
	if len(log.Topics) == 0 {
		return fail(ErrMissingTopics)
	}

	contractABI, ok := d.abis[kind]
	if !ok {
		return decoded, nil
	}

	event, err := contractABI.EventByID(log.Topics[0])
	if err != nil {
		return decoded, nil
	}

	args := make(map[string]any, len(event.Inputs))

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}

	if err := abi.ParseTopicsIntoMap(args, indexed, log.Topics[1:]); err != nil {
		return fail(err)
	}
	if err := event.Inputs.UnpackIntoMap(args, log.Data); err != nil {
		return fail(err)
	}

	decoded.Name = event.Name
	decoded.Args = args
	decoded.Event = eventsByKind[kind][event.Name]

	return decoded, nil
}
