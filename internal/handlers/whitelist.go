package handlers

import (
	"context"

	"github.com/goran-ethernal/ChainRelay/internal/relay"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
)

func handleUserApproved(_ context.Context, in Input) ([]pkgrelay.Operation, error) {
	user, err := addressArg(in.Event.Args, "user")
	if err != nil {
		return nil, err
	}
	approved, err := boolArg(in.Event.Args, "status")
	if err != nil {
		return nil, err
	}

	return []pkgrelay.Operation{
		relay.UpdateWhitelistUser(in.Event.Address, user, approved),
	}, nil
}

func handleAgreementSigned(_ context.Context, in Input) ([]pkgrelay.Operation, error) {
	user, err := addressArg(in.Event.Args, "user")
	if err != nil {
		return nil, err
	}

	return []pkgrelay.Operation{
		relay.CreateAgreementSignature(in.Event.Address, user),
	}, nil
}
