package handlers

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

func argOf[T any](args map[string]any, name string) (T, error) {
	var zero T

	raw, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("missing event argument %q", name)
	}

	value, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("event argument %q has type %T, expected %T", name, raw, zero)
	}

	return value, nil
}

func addressArg(args map[string]any, name string) (common.Address, error) {
	return argOf[common.Address](args, name)
}

func boolArg(args map[string]any, name string) (bool, error) {
	return argOf[bool](args, name)
}

func stringArg(args map[string]any, name string) (string, error) {
	return argOf[string](args, name)
}

func bigIntArg(args map[string]any, name string) (*big.Int, error) {
	return argOf[*big.Int](args, name)
}
