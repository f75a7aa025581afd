package handlers

import (
	"context"

	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
)

// handleWhitelistDeployed starts watching the new whitelist and records it with
// the agreement hash and approval flag read from the contract.
func handleWhitelistDeployed(ctx context.Context, in Input) ([]pkgrelay.Operation, error) {
	whitelist, err := addressArg(in.Event.Args, "whitelist")
	if err != nil {
		return nil, err
	}
	owner, err := addressArg(in.Event.Args, "owner")
	if err != nil {
		return nil, err
	}

	in.Watcher.Watch(ctx, whitelist, contracts.KindWhitelist)

	handle, err := contracts.NewHandle(whitelist, contracts.KindWhitelist, in.Caller)
	if err != nil {
		return nil, err
	}

	agreementHash, err := handle.CallString(ctx, "agreementHash")
	if err != nil {
		return nil, &AuxiliaryReadError{Address: whitelist, Method: "agreementHash", Err: err}
	}

	useApprovals, err := handle.CallBool(ctx, "useApprovals")
	if err != nil {
		return nil, &AuxiliaryReadError{Address: whitelist, Method: "useApprovals", Err: err}
	}

	return []pkgrelay.Operation{
		relay.CreateWhitelist(whitelist, owner, agreementHash, useApprovals),
	}, nil
}

func handleCoinMachineDeployed(ctx context.Context, in Input) ([]pkgrelay.Operation, error) {
	coinMachine, err := addressArg(in.Event.Args, "coinMachine")
	if err != nil {
		return nil, err
	}
	owner, err := addressArg(in.Event.Args, "owner")
	if err != nil {
		return nil, err
	}
	agreementHash, err := stringArg(in.Event.Args, "agreementHash")
	if err != nil {
		return nil, err
	}

	in.Watcher.Watch(ctx, coinMachine, contracts.KindSaleMachine)

	return []pkgrelay.Operation{
		relay.CreateCompanyAgreement(coinMachine, owner, agreementHash),
	}, nil
}
