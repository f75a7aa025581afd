package contracts

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

//go:embed abi/*.json
var abiFiles embed.FS

var abiFileByKind = map[Kind]string{
	KindFactory:     "abi/factory.json",
	KindWhitelist:   "abi/whitelist.json",
	KindSaleMachine: "abi/coin_machine.json",
}

var loadABIs = sync.OnceValues(func() (map[Kind]abi.ABI, error) {
	parsed := make(map[Kind]abi.ABI, len(abiFileByKind))

	for kind, file := range abiFileByKind {
		raw, err := abiFiles.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s abi: %w", kind, err)
		}

		contractABI, err := abi.JSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse %s abi: %w", kind, err)
		}

		parsed[kind] = contractABI
	}

	return parsed, nil
})

// ABI returns the parsed ABI of the given contract kind.
func ABI(kind Kind) (abi.ABI, error) {
	abis, err := loadABIs()
	if err != nil {
		return abi.ABI{}, err
	}

	contractABI, ok := abis[kind]
	if !ok {
		return abi.ABI{}, fmt.Errorf("no abi for contract kind %s", kind)
	}

	return contractABI, nil
}
