package relay

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	pkgrelay "github.com/goran-ethernal/ChainRelay/pkg/relay"
	"github.com/tidwall/gjson"
)

// Operation names understood by the store.
const (
	OpListWhitelists           = "ListWhitelistsQuery"
	OpListSales                = "ListSalesQuery"
	OpCreateWhitelist          = "CreateWhitelist"
	OpCreateCompanyAgreement   = "CreateCompanyAgreement"
	OpUpdateWhitelistUser      = "UpdateWhitelistUser"
	OpCreateAgreementSignature = "CreateAgreementSignature"
	OpUpdateSale               = "UpdateSale"
	OpUpdateSaleState          = "UpdateSaleState"
	OpUpdateSaleBalance        = "UpdateSaleBalance"
	OpCreatePurchase           = "CreatePurchase"
)

const (
	listWhitelistsQuery = `query ListWhitelistsQuery {
  listWhitelists {
    items {
      id
    }
  }
}`

	listSalesQuery = `query ListSalesQuery {
  listSales {
    items {
      coinMachineAddress
    }
  }
}`

	createWhitelistMutation = `mutation CreateWhitelist($input: CreateWhitelistInput!) {
  createWhitelist(input: $input) {
    id
  }
}`

	createCompanyAgreementMutation = `mutation CreateCompanyAgreement($input: CreateCompanyAgreementInput!) {
  createCompanyAgreement(input: $input) {
    coinMachineAddress
  }
}`

	updateWhitelistUserMutation = `mutation UpdateWhitelistUser($input: UpdateWhitelistUserInput!) {
  updateWhitelistUser(input: $input) {
    whitelistId
    userAddress
  }
}`

	createAgreementSignatureMutation = `mutation CreateAgreementSignature($input: CreateAgreementSignatureInput!) {
  createAgreementSignature(input: $input) {
    whitelistId
    userAddress
  }
}`

	updateSaleMutation = `mutation UpdateSale($input: UpdateSaleInput!) {
  updateSale(input: $input) {
    coinMachineAddress
  }
}`

	updateSaleStateMutation = `mutation UpdateSaleState($input: UpdateSaleInput!) {
  updateSale(input: $input) {
    coinMachineAddress
    active
  }
}`

	updateSaleBalanceMutation = `mutation UpdateSaleBalance($input: UpdateSaleInput!) {
  updateSale(input: $input) {
    coinMachineAddress
    tokenBalance
  }
}`

	createPurchaseMutation = `mutation CreatePurchase($input: CreatePurchaseInput!) {
  createPurchase(input: $input) {
    coinMachineAddress
    buyer
  }
}`
)

func mutation(name, query string, input map[string]any) pkgrelay.Operation {
	return pkgrelay.Operation{
		Name:      name,
		Query:     query,
		Variables: map[string]any{"input": input},
	}
}

// ListWhitelists lists every whitelist known to the store.
func ListWhitelists() pkgrelay.Operation {
	return pkgrelay.Operation{Name: OpListWhitelists, Query: listWhitelistsQuery}
}

// ListSales lists every sale known to the store.
func ListSales() pkgrelay.Operation {
	return pkgrelay.Operation{Name: OpListSales, Query: listSalesQuery}
}

// CreateWhitelist records a newly deployed whitelist and its owner.
func CreateWhitelist(whitelist, owner common.Address, agreementHash string, useApprovals bool) pkgrelay.Operation {
	return mutation(OpCreateWhitelist, createWhitelistMutation, map[string]any{
		"id":            whitelist.Hex(),
		"owner":         owner.Hex(),
		"agreementHash": agreementHash,
		"useApprovals":  useApprovals,
	})
}

// CreateCompanyAgreement records the agreement a coin machine was deployed with.
func CreateCompanyAgreement(coinMachine, owner common.Address, agreementHash string) pkgrelay.Operation {
	return mutation(OpCreateCompanyAgreement, createCompanyAgreementMutation, map[string]any{
		"coinMachineAddress":      coinMachine.Hex(),
		"userCompanyAgreementsId": owner.Hex(),
		"agreementHash":           agreementHash,
	})
}

// UpdateWhitelistUser sets the approval status of a user on a whitelist.
func UpdateWhitelistUser(whitelist, user common.Address, approved bool) pkgrelay.Operation {
	return mutation(OpUpdateWhitelistUser, updateWhitelistUserMutation, map[string]any{
		"whitelistId": whitelist.Hex(),
		"userAddress": user.Hex(),
		"approved":    approved,
	})
}

// CreateAgreementSignature records that a user signed the whitelist agreement.
func CreateAgreementSignature(whitelist, user common.Address) pkgrelay.Operation {
	return mutation(OpCreateAgreementSignature, createAgreementSignatureMutation, map[string]any{
		"whitelistId": whitelist.Hex(),
		"userAddress": user.Hex(),
	})
}

// SaleParams are the parameters a coin machine is initialised with.
type SaleParams struct {
	Token           common.Address
	PurchaseToken   common.Address
	PeriodLength    *big.Int
	WindowSize      *big.Int
	TargetPerPeriod *big.Int
	MaxPerPeriod    *big.Int
	StartingPrice   *big.Int
	Whitelist       common.Address
}

// UpdateSale stores the initial parameters of a sale.
func UpdateSale(coinMachine common.Address, p SaleParams) pkgrelay.Operation {
	input := map[string]any{
		"coinMachineAddress": coinMachine.Hex(),
		"token":              p.Token.Hex(),
		"purchaseToken":      p.PurchaseToken.Hex(),
		"periodLength":       decimal(p.PeriodLength),
		"windowSize":         decimal(p.WindowSize),
		"targetPerPeriod":    decimal(p.TargetPerPeriod),
		"maxPerPeriod":       decimal(p.MaxPerPeriod),
		"startingPrice":      decimal(p.StartingPrice),
	}
	if p.Whitelist != (common.Address{}) {
		input["whitelistAddress"] = p.Whitelist.Hex()
	}

	return mutation(OpUpdateSale, updateSaleMutation, input)
}

// UpdateSaleState marks a sale active or inactive.
func UpdateSaleState(coinMachine common.Address, active bool) pkgrelay.Operation {
	return mutation(OpUpdateSaleState, updateSaleStateMutation, map[string]any{
		"coinMachineAddress": coinMachine.Hex(),
		"active":             active,
	})
}

// UpdateSaleBalance records the token balance of a sale and, when known, its sold total.
func UpdateSaleBalance(coinMachine common.Address, tokenBalance, soldTotal *big.Int) pkgrelay.Operation {
	input := map[string]any{
		"coinMachineAddress": coinMachine.Hex(),
		"tokenBalance":       decimal(tokenBalance),
	}
	if soldTotal != nil {
		input["soldTotal"] = decimal(soldTotal)
	}

	return mutation(OpUpdateSaleBalance, updateSaleBalanceMutation, input)
}

// CreatePurchase records a token purchase on a sale.
func CreatePurchase(coinMachine, buyer common.Address, numTokens, totalCost *big.Int) pkgrelay.Operation {
	return mutation(OpCreatePurchase, createPurchaseMutation, map[string]any{
		"coinMachineAddress": coinMachine.Hex(),
		"buyer":              buyer.Hex(),
		"numTokens":          decimal(numTokens),
		"totalCost":          decimal(totalCost),
	})
}

// ParseWhitelistIDs extracts data.listWhitelists.items[].id from a ListWhitelists response.
func ParseWhitelistIDs(body []byte) []string {
	return collectStrings(body, "data.listWhitelists.items.#.id")
}

// ParseSaleAddresses extracts data.listSales.items[].coinMachineAddress from a ListSales response.
func ParseSaleAddresses(body []byte) []string {
	return collectStrings(body, "data.listSales.items.#.coinMachineAddress")
}

// collectStrings returns the non-empty string values at path.
func collectStrings(body []byte, path string) []string {
	var values []string
	for _, v := range gjson.GetBytes(body, path).Array() {
		if s := v.String(); s != "" {
			values = append(values, s)
		}
	}
	return values
}

func decimal(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
