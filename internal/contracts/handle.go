package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	pkgrpc "github.com/goran-ethernal/ChainRelay/pkg/rpc"
)

// Handle binds a deployed contract to a caller for read-only view calls.
type Handle struct {
	Address common.Address
	Kind    Kind

	abi    abi.ABI
	caller pkgrpc.ContractCaller
}

// NewHandle creates a handle for the contract of the given kind at address.
func NewHandle(address common.Address, kind Kind, caller pkgrpc.ContractCaller) (*Handle, error) {
	contractABI, err := ABI(kind)
	if err != nil {
		return nil, err
	}

	return &Handle{
		Address: address,
		Kind:    kind,
		abi:     contractABI,
		caller:  caller,
	}, nil
}

// Call invokes a view method at the latest block and returns its unpacked outputs.
func (h *Handle) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := h.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	to := h.Address
	resp, err := h.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, h.Address.Hex(), err)
	}

	values, err := h.abi.Unpack(method, resp)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}

	return values, nil
}

// CallString calls a view method with a single string output.
func (h *Handle) CallString(ctx context.Context, method string) (string, error) {
	value, err := h.callSingle(ctx, method)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: unexpected output type %T", method, value)
	}
	return s, nil
}

// CallBool calls a view method with a single bool output.
func (h *Handle) CallBool(ctx context.Context, method string) (bool, error) {
	value, err := h.callSingle(ctx, method)
	if err != nil {
		return false, err
	}

	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%s: unexpected output type %T", method, value)
	}
	return b, nil
}

// CallBigInt calls a view method with a single integer output.
func (h *Handle) CallBigInt(ctx context.Context, method string) (*big.Int, error) {
	value, err := h.callSingle(ctx, method)
	if err != nil {
		return nil, err
	}

	n, ok := value.(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected output type %T", method, value)
	}
	return n, nil
}

func (h *Handle) callSingle(ctx context.Context, method string) (any, error) {
	values, err := h.Call(ctx, method)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s: expected 1 output, got %d", method, len(values))
	}
	return values[0], nil
}
