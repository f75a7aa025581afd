package contracts

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	rpcmocks "github.com/goran-ethernal/ChainRelay/internal/rpc/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func packOutput(t *testing.T, kind Kind, method string, values ...any) []byte {
	t.Helper()

	contractABI, err := ABI(kind)
	require.NoError(t, err)

	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)

	return out
}

func callTo(method string, kind Kind) any {
	contractABI, _ := ABI(kind)
	selector := contractABI.Methods[method].ID

	return mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.To != nil && string(msg.Data) == string(selector)
	})
}

func TestHandle_TypedCalls(t *testing.T) {
	ctx := context.Background()
	caller := rpcmocks.NewContractCaller(t)

	caller.EXPECT().CallContract(ctx, callTo("agreementHash", KindWhitelist), (*big.Int)(nil)).
		Return(packOutput(t, KindWhitelist, "agreementHash", "QmAgreement"), nil).Once()
	caller.EXPECT().CallContract(ctx, callTo("useApprovals", KindWhitelist), (*big.Int)(nil)).
		Return(packOutput(t, KindWhitelist, "useApprovals", true), nil).Once()

	whitelist, err := NewHandle(testWhitelist, KindWhitelist, caller)
	require.NoError(t, err)

	hash, err := whitelist.CallString(ctx, "agreementHash")
	require.NoError(t, err)
	require.Equal(t, "QmAgreement", hash)

	approvals, err := whitelist.CallBool(ctx, "useApprovals")
	require.NoError(t, err)
	require.True(t, approvals)
}

func TestHandle_CallBigInt(t *testing.T) {
	ctx := context.Background()
	caller := rpcmocks.NewContractCaller(t)

	caller.EXPECT().CallContract(ctx, mock.Anything, (*big.Int)(nil)).
		Return(packOutput(t, KindSaleMachine, "getTokenBalance", big.NewInt(5000)), nil).Once()

	machine, err := NewHandle(testCoinMachine, KindSaleMachine, caller)
	require.NoError(t, err)

	balance, err := machine.CallBigInt(ctx, "getTokenBalance")
	require.NoError(t, err)
	require.Equal(t, big.NewInt(5000), balance)
}

func TestHandle_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown method", func(t *testing.T) {
		machine, err := NewHandle(testCoinMachine, KindSaleMachine, rpcmocks.NewContractCaller(t))
		require.NoError(t, err)

		_, err = machine.Call(ctx, "mint")
		require.ErrorContains(t, err, "pack mint")
	})

	t.Run("call fails", func(t *testing.T) {
		caller := rpcmocks.NewContractCaller(t)
		rpcErr := errors.New("execution reverted")
		caller.EXPECT().CallContract(ctx, mock.Anything, (*big.Int)(nil)).Return(nil, rpcErr).Once()

		machine, err := NewHandle(testCoinMachine, KindSaleMachine, caller)
		require.NoError(t, err)

		_, err = machine.CallBigInt(ctx, "getSoldTotal")
		require.ErrorIs(t, err, rpcErr)
	})

	t.Run("wrong output type", func(t *testing.T) {
		caller := rpcmocks.NewContractCaller(t)
		caller.EXPECT().CallContract(ctx, mock.Anything, (*big.Int)(nil)).
			Return(packOutput(t, KindWhitelist, "useApprovals", false), nil).Once()

		whitelist, err := NewHandle(testWhitelist, KindWhitelist, caller)
		require.NoError(t, err)

		_, err = whitelist.CallString(ctx, "useApprovals")
		require.ErrorContains(t, err, "unexpected output type bool")
	})
}
