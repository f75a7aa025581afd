package handlers

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	rpcmocks "github.com/goran-ethernal/ChainRelay/internal/rpc/mocks"
	submocks "github.com/goran-ethernal/ChainRelay/internal/subscription/mocks"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"github.com/goran-ethernal/ChainRelay/pkg/subscription"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	factoryAddr   = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	whitelistAddr = common.HexToAddress("0x0000000000000000000000000000000000000AAA")
	ownerAddr     = common.HexToAddress("0x0000000000000000000000000000000000000BBB")
	machineAddr   = common.HexToAddress("0x0000000000000000000000000000000000000CCC")
	buyerAddr     = common.HexToAddress("0x0000000000000000000000000000000000000DDD")
)

// expectRead makes caller answer a view call on address with the packed values.
func expectRead(t *testing.T, caller *rpcmocks.ContractCaller, kind contracts.Kind,
	address common.Address, method string, values ...any) {
	t.Helper()

	contractABI, err := contracts.ABI(kind)
	require.NoError(t, err)

	out, err := contractABI.Methods[method].Outputs.Pack(values...)
	require.NoError(t, err)

	selector := contractABI.Methods[method].ID
	caller.EXPECT().CallContract(mock.Anything, mock.MatchedBy(func(msg ethereum.CallMsg) bool {
		return msg.To != nil && *msg.To == address && string(msg.Data) == string(selector)
	}), (*big.Int)(nil)).Return(out, nil).Once()
}

func event(kind contracts.Kind, address common.Address, ev contracts.EventType, args map[string]any) contracts.DecodedEvent {
	return contracts.DecodedEvent{
		Address: address,
		Kind:    kind,
		Event:   ev,
		Name:    ev.String(),
		Args:    args,
	}
}

func names(ops []pkgrelay.Operation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, op.Name)
	}
	return out
}

func TestNewTable_CoversEveryEvent(t *testing.T) {
	table := NewTable()

	for _, kind := range contracts.AllKinds {
		for _, ev := range contracts.EventsOf(kind) {
			h, ok := table.Lookup(kind, ev)
			require.True(t, ok, "%s/%s", kind, ev)
			require.NotNil(t, h)
		}
	}

	_, ok := table.Lookup(contracts.KindWhitelist, contracts.EventUnknown)
	require.False(t, ok)

	// events are only routed for the kind that emits them
	_, ok = table.Lookup(contracts.KindWhitelist, contracts.EventTokensBought)
	require.False(t, ok)
}

func TestWhitelistDeployed(t *testing.T) {
	ctx := context.Background()
	watcher := submocks.NewWatcher(t)
	caller := rpcmocks.NewContractCaller(t)

	watcher.EXPECT().Watch(ctx, whitelistAddr, contracts.KindWhitelist).
		Return(subscription.Subscription{Address: whitelistAddr, Kind: contracts.KindWhitelist}).Once()
	expectRead(t, caller, contracts.KindWhitelist, whitelistAddr, "agreementHash", "QmAgreement")
	expectRead(t, caller, contracts.KindWhitelist, whitelistAddr, "useApprovals", true)

	h, ok := NewTable().Lookup(contracts.KindFactory, contracts.EventWhitelistDeployed)
	require.True(t, ok)

	ops, err := h(ctx, Input{
		Event: event(contracts.KindFactory, factoryAddr, contracts.EventWhitelistDeployed,
			map[string]any{"whitelist": whitelistAddr, "owner": ownerAddr}),
		Watcher: watcher,
		Caller:  caller,
	})
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, relay.CreateWhitelist(whitelistAddr, ownerAddr, "QmAgreement", true), ops[0])

	in := ops[0].Variables["input"].(map[string]any)
	require.Equal(t, whitelistAddr.Hex(), in["id"])
	require.Equal(t, ownerAddr.Hex(), in["owner"])
}

func TestWhitelistDeployed_ReadFailureKeepsWatch(t *testing.T) {
	ctx := context.Background()
	watcher := submocks.NewWatcher(t)
	caller := rpcmocks.NewContractCaller(t)

	watcher.EXPECT().Watch(ctx, whitelistAddr, contracts.KindWhitelist).
		Return(subscription.Subscription{}).Once()
	readErr := errors.New("execution reverted")
	caller.EXPECT().CallContract(ctx, mock.Anything, (*big.Int)(nil)).Return(nil, readErr).Once()

	ops, err := handleWhitelistDeployed(ctx, Input{
		Event: event(contracts.KindFactory, factoryAddr, contracts.EventWhitelistDeployed,
			map[string]any{"whitelist": whitelistAddr, "owner": ownerAddr}),
		Watcher: watcher,
		Caller:  caller,
	})
	require.Nil(t, ops)

	var auxErr *AuxiliaryReadError
	require.ErrorAs(t, err, &auxErr)
	require.Equal(t, "agreementHash", auxErr.Method)
	require.Equal(t, whitelistAddr, auxErr.Address)
	require.ErrorIs(t, err, readErr)
}

func TestCoinMachineDeployed(t *testing.T) {
	ctx := context.Background()
	watcher := submocks.NewWatcher(t)

	watcher.EXPECT().Watch(ctx, machineAddr, contracts.KindSaleMachine).
		Return(subscription.Subscription{}).Once()

	ops, err := handleCoinMachineDeployed(ctx, Input{
		Event: event(contracts.KindFactory, factoryAddr, contracts.EventCoinMachineDeployed,
			map[string]any{"coinMachine": machineAddr, "owner": ownerAddr, "agreementHash": "QmCompany"}),
		Watcher: watcher,
	})
	require.NoError(t, err)
	require.Equal(t, []string{relay.OpCreateCompanyAgreement}, names(ops))

	in := ops[0].Variables["input"].(map[string]any)
	require.Equal(t, machineAddr.Hex(), in["coinMachineAddress"])
	require.Equal(t, ownerAddr.Hex(), in["userCompanyAgreementsId"])
	require.Equal(t, "QmCompany", in["agreementHash"])
}

func TestWhitelistEvents(t *testing.T) {
	ctx := context.Background()

	ops, err := handleUserApproved(ctx, Input{Event: event(contracts.KindWhitelist, whitelistAddr,
		contracts.EventUserApproved, map[string]any{"user": buyerAddr, "status": false})})
	require.NoError(t, err)
	require.Equal(t, relay.UpdateWhitelistUser(whitelistAddr, buyerAddr, false), ops[0])

	ops, err = handleAgreementSigned(ctx, Input{Event: event(contracts.KindWhitelist, whitelistAddr,
		contracts.EventAgreementSigned, map[string]any{"user": buyerAddr})})
	require.NoError(t, err)
	require.Equal(t, relay.CreateAgreementSignature(whitelistAddr, buyerAddr), ops[0])

	_, err = handleAgreementSigned(ctx, Input{Event: event(contracts.KindWhitelist, whitelistAddr,
		contracts.EventAgreementSigned, map[string]any{"user": "0xDDD"})})
	require.ErrorContains(t, err, `event argument "user" has type string`)
}

func TestCoinMachineInitialised(t *testing.T) {
	args := func(whitelist common.Address) map[string]any {
		return map[string]any{
			"token":           common.HexToAddress("0x1"),
			"purchaseToken":   common.HexToAddress("0x2"),
			"periodLength":    big.NewInt(3600),
			"windowSize":      big.NewInt(24),
			"targetPerPeriod": big.NewInt(1000),
			"maxPerPeriod":    big.NewInt(2000),
			"startingPrice":   big.NewInt(5),
			"whitelist":       whitelist,
		}
	}

	t.Run("with whitelist", func(t *testing.T) {
		ctx := context.Background()
		watcher := submocks.NewWatcher(t)
		watcher.EXPECT().Watch(ctx, whitelistAddr, contracts.KindWhitelist).
			Return(subscription.Subscription{}).Once()

		ops, err := handleCoinMachineInitialised(ctx, Input{
			Event:   event(contracts.KindSaleMachine, machineAddr, contracts.EventCoinMachineInitialised, args(whitelistAddr)),
			Watcher: watcher,
		})
		require.NoError(t, err)
		require.Equal(t, []string{relay.OpUpdateSale}, names(ops))

		in := ops[0].Variables["input"].(map[string]any)
		require.Equal(t, "3600", in["periodLength"])
		require.Equal(t, whitelistAddr.Hex(), in["whitelistAddress"])
	})

	t.Run("without whitelist", func(t *testing.T) {
		// no expectations: watching must not happen
		watcher := submocks.NewWatcher(t)

		ops, err := handleCoinMachineInitialised(context.Background(), Input{
			Event:   event(contracts.KindSaleMachine, machineAddr, contracts.EventCoinMachineInitialised, args(common.Address{})),
			Watcher: watcher,
		})
		require.NoError(t, err)
		require.Len(t, ops, 1)
	})
}

func TestCoinMachineStateSet(t *testing.T) {
	ctx := context.Background()
	caller := rpcmocks.NewContractCaller(t)
	expectRead(t, caller, contracts.KindSaleMachine, machineAddr, "getTokenBalance", big.NewInt(900))

	source, err := contracts.NewHandle(machineAddr, contracts.KindSaleMachine, caller)
	require.NoError(t, err)

	ops, err := handleCoinMachineStateSet(ctx, Input{
		Event:  event(contracts.KindSaleMachine, machineAddr, contracts.EventCoinMachineStateSet, map[string]any{"state": true}),
		Source: source,
	})
	require.NoError(t, err)
	require.Equal(t, []string{relay.OpUpdateSaleState, relay.OpUpdateSaleBalance}, names(ops))
	require.Equal(t, relay.UpdateSaleBalance(machineAddr, big.NewInt(900), nil), ops[1])
}

func TestTokensBought(t *testing.T) {
	ctx := context.Background()
	caller := rpcmocks.NewContractCaller(t)
	expectRead(t, caller, contracts.KindSaleMachine, machineAddr, "getSoldTotal", big.NewInt(110))
	expectRead(t, caller, contracts.KindSaleMachine, machineAddr, "getTokenBalance", big.NewInt(890))

	source, err := contracts.NewHandle(machineAddr, contracts.KindSaleMachine, caller)
	require.NoError(t, err)

	// no watch may happen for a purchase
	watcher := submocks.NewWatcher(t)

	ops, err := handleTokensBought(ctx, Input{
		Event: event(contracts.KindSaleMachine, machineAddr, contracts.EventTokensBought, map[string]any{
			"buyer":     buyerAddr,
			"numTokens": big.NewInt(10),
			"totalCost": big.NewInt(50),
		}),
		Watcher: watcher,
		Source:  source,
	})
	require.NoError(t, err)
	require.Equal(t, []string{relay.OpCreatePurchase, relay.OpUpdateSaleBalance}, names(ops))

	purchase := ops[0].Variables["input"].(map[string]any)
	require.Equal(t, machineAddr.Hex(), purchase["coinMachineAddress"])
	require.Equal(t, buyerAddr.Hex(), purchase["buyer"])
	require.Equal(t, "10", purchase["numTokens"])
	require.Equal(t, "50", purchase["totalCost"])

	balance := ops[1].Variables["input"].(map[string]any)
	require.Equal(t, "890", balance["tokenBalance"])
	require.Equal(t, "110", balance["soldTotal"])
}

func TestTokensBought_AuxiliaryReadFails(t *testing.T) {
	ctx := context.Background()
	caller := rpcmocks.NewContractCaller(t)
	caller.EXPECT().CallContract(ctx, mock.Anything, (*big.Int)(nil)).
		Return(nil, errors.New("header not found")).Once()

	source, err := contracts.NewHandle(machineAddr, contracts.KindSaleMachine, caller)
	require.NoError(t, err)

	ops, err := handleTokensBought(ctx, Input{
		Event: event(contracts.KindSaleMachine, machineAddr, contracts.EventTokensBought, map[string]any{
			"buyer":     buyerAddr,
			"numTokens": big.NewInt(10),
			"totalCost": big.NewInt(50),
		}),
		Source: source,
	})
	require.Empty(t, ops)

	var auxErr *AuxiliaryReadError
	require.ErrorAs(t, err, &auxErr)
	require.Equal(t, "getSoldTotal", auxErr.Method)
}

func TestSaleMachineEvent_WithoutSource(t *testing.T) {
	_, err := handleCoinMachineStateSet(context.Background(), Input{
		Event: event(contracts.KindSaleMachine, machineAddr, contracts.EventCoinMachineStateSet, map[string]any{"state": true}),
	})
	require.ErrorIs(t, err, errMissingSource)
}
