package contracts

// EventType enumerates every event the relay understands.
type EventType uint8

const (
	// EventUnknown marks a log whose signature is not part of the kind's ABI.
	EventUnknown EventType = iota

	// Factory
	EventWhitelistDeployed
	EventCoinMachineDeployed

	// Whitelist
	EventUserApproved
	EventAgreementSigned

	// Sale machine
	EventCoinMachineInitialised
	EventCoinMachineStateSet
	EventTokensBought
)

var eventNames = map[EventType]string{
	EventUnknown:                "unknown",
	EventWhitelistDeployed:      "WhitelistDeployed",
	EventCoinMachineDeployed:    "CoinMachineDeployed",
	EventUserApproved:           "UserApproved",
	EventAgreementSigned:        "AgreementSigned",
	EventCoinMachineInitialised: "CoinMachineInitialised",
	EventCoinMachineStateSet:    "CoinMachineStateSet",
	EventTokensBought:           "TokensBought",
}

// eventsByKind maps ABI event names to their enumerated type, per kind.
var eventsByKind = map[Kind]map[string]EventType{
	KindFactory: {
		"WhitelistDeployed":   EventWhitelistDeployed,
		"CoinMachineDeployed": EventCoinMachineDeployed,
	},
	KindWhitelist: {
		"UserApproved":    EventUserApproved,
		"AgreementSigned": EventAgreementSigned,
	},
	KindSaleMachine: {
		"CoinMachineInitialised": EventCoinMachineInitialised,
		"CoinMachineStateSet":    EventCoinMachineStateSet,
		"TokensBought":           EventTokensBought,
	},
}

func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return eventNames[EventUnknown]
}

// EventsOf returns the events a contract of the given kind can emit.
func EventsOf(kind Kind) []EventType {
	switch kind {
	case KindFactory:
		return []EventType{EventWhitelistDeployed, EventCoinMachineDeployed}
	case KindWhitelist:
		return []EventType{EventUserApproved, EventAgreementSigned}
	case KindSaleMachine:
		return []EventType{EventCoinMachineInitialised, EventCoinMachineStateSet, EventTokensBought}
	default:
		return nil
	}
}
