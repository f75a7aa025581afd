package subscription

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/goran-ethernal/ChainRelay/internal/common"
	"github.com/goran-ethernal/ChainRelay/internal/contracts"
	"github.com/goran-ethernal/ChainRelay/internal/relay"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"golang.org/x/sync/errgroup"
)

// Target is a contract learned from the store at startup.
type Target struct {
	Address ethcommon.Address
	Kind    contracts.Kind
}

// Bootstrap lists the whitelists and sales already known to the store.
// Both lists are fetched concurrently; a list that cannot be fetched is
// logged and treated as empty.
func (m *Manager) Bootstrap(ctx context.Context) []Target {
	var (
		whitelists []string
		sales      []string
		g          errgroup.Group
	)

	g.Go(func() error {
		whitelists = m.list(ctx, relay.ListWhitelists(), relay.ParseWhitelistIDs)
		return nil
	})
	g.Go(func() error {
		sales = m.list(ctx, relay.ListSales(), relay.ParseSaleAddresses)
		return nil
	})
	_ = g.Wait()

	targets := make([]Target, 0, len(whitelists)+len(sales))
	targets = m.appendTargets(targets, whitelists, contracts.KindWhitelist)
	targets = m.appendTargets(targets, sales, contracts.KindSaleMachine)

	return targets
}

func (m *Manager) list(ctx context.Context, op pkgrelay.Operation, parse func([]byte) []string) []string {
	body, err := m.relay.Query(ctx, op)
	if err != nil {
		bootstrapFailures.WithLabelValues(op.Name).Inc()
		m.log.Warnw("bootstrap list unavailable, continuing without it", "operation", op.Name, "error", err)
		return nil
	}

	return parse(body)
}

func (m *Manager) appendTargets(targets []Target, addresses []string, kind contracts.Kind) []Target {
	for _, raw := range addresses {
		address, err := common.ParseAddress(raw)
		if err != nil {
			m.log.Warnw("skipping invalid bootstrap address", "kind", kind, "address", raw, "error", err)
			continue
		}

		bootstrapTargets.WithLabelValues(kind.String()).Inc()
		targets = append(targets, Target{Address: address, Kind: kind})
	}

	return targets
}
