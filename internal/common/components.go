package common

const (
	ComponentRelay               = "relay"
	ComponentRPC                 = "rpc"
	ComponentSubscriptionManager = "subscription-manager"
	ComponentDispatcher          = "dispatcher"
	ComponentRelayClient         = "relay-client"
	ComponentJournal             = "journal"
	ComponentAPI                 = "api"
)

var AllComponents = map[string]struct{}{
	ComponentRelay:               {},
	ComponentRPC:                 {},
	ComponentSubscriptionManager: {},
	ComponentDispatcher:          {},
	ComponentRelayClient:         {},
	ComponentJournal:             {},
	ComponentAPI:                 {},
}
