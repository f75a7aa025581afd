package handlers

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
)

const (
	methodTokenBalance = "getTokenBalance"
	methodSoldTotal    = "getSoldTotal"
)

// handleCoinMachineInitialised records the sale parameters and starts watching
// the sale's whitelist, if it has one.
func handleCoinMachineInitialised(ctx context.Context, in Input) ([]pkgrelay.Operation, error) {
	args := in.Event.Args

	var (
		params relay.SaleParams
		err    error
	)

	if params.Token, err = addressArg(args, "token"); err != nil {
		return nil, err
	}
	if params.PurchaseToken, err = addressArg(args, "purchaseToken"); err != nil {
		return nil, err
	}
	if params.Whitelist, err = addressArg(args, "whitelist"); err != nil {
		return nil, err
	}

	amounts := []struct {
		name string
		dst  **big.Int
	}{
		{"periodLength", &params.PeriodLength},
		{"windowSize", &params.WindowSize},
		{"targetPerPeriod", &params.TargetPerPeriod},
		{"maxPerPeriod", &params.MaxPerPeriod},
		{"startingPrice", &params.StartingPrice},
	}
	for _, a := range amounts {
		if *a.dst, err = bigIntArg(args, a.name); err != nil {
			return nil, err
		}
	}

	if params.Whitelist != (common.Address{}) {
		in.Watcher.Watch(ctx, params.Whitelist, contracts.KindWhitelist)
	}

	return []pkgrelay.Operation{
		relay.UpdateSale(in.Event.Address, params),
	}, nil
}

func handleCoinMachineStateSet(ctx context.Context, in Input) ([]pkgrelay.Operation, error) {
	active, err := boolArg(in.Event.Args, "state")
	if err != nil {
		return nil, err
	}

	balance, err := readAmount(ctx, in.Source, methodTokenBalance)
	if err != nil {
		return nil, err
	}

	return []pkgrelay.Operation{
		relay.UpdateSaleState(in.Event.Address, active),
		relay.UpdateSaleBalance(in.Event.Address, balance, nil),
	}, nil
}

// handleTokensBought records the purchase and the sale balances read after it.
func handleTokensBought(ctx context.Context, in Input) ([]pkgrelay.Operation, error) {
	buyer, err := addressArg(in.Event.Args, "buyer")
	if err != nil {
		return nil, err
	}
	numTokens, err := bigIntArg(in.Event.Args, "numTokens")
	if err != nil {
		return nil, err
	}
	totalCost, err := bigIntArg(in.Event.Args, "totalCost")
	if err != nil {
		return nil, err
	}

	soldTotal, err := readAmount(ctx, in.Source, methodSoldTotal)
	if err != nil {
		return nil, err
	}
	balance, err := readAmount(ctx, in.Source, methodTokenBalance)
	if err != nil {
		return nil, err
	}

	return []pkgrelay.Operation{
		relay.CreatePurchase(in.Event.Address, buyer, numTokens, totalCost),
		relay.UpdateSaleBalance(in.Event.Address, balance, soldTotal),
	}, nil
}

func readAmount(ctx context.Context, source *contracts.Handle, method string) (*big.Int, error) {
	if source == nil {
		return nil, errMissingSource
	}

	amount, err := source.CallBigInt(ctx, method)
	if err != nil {
		return nil, &AuxiliaryReadError{Address: source.Address, Method: method, Err: err}
	}

	return amount, nil
}
