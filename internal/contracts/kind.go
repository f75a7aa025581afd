package contracts

import "fmt"

// Kind identifies which contract ABI a watched address speaks.
type Kind uint8

const (
	KindFactory Kind = iota + 1
	KindWhitelist
	KindSaleMachine
)

// AllKinds lists every supported contract kind.
var AllKinds = []Kind{KindFactory, KindWhitelist, KindSaleMachine}

func (k Kind) String() string {
	switch k {
	case KindFactory:
		return "factory"
	case KindWhitelist:
		return "whitelist"
	case KindSaleMachine:
		return "sale_machine"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MarshalText renders the kind by name for JSON responses.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
