package types

import (
	"fmt"
	"math/big"

	"github.com/TodoChain/todos-go-node/helpers"
)

type AppState struct {
	Note        string    `json:"note"`
	StartHeight uint64    `json:"start_height"`
	Accounts    []Account `json:"accounts,omitempty"`
	Lists       []List    `json:"lists,omitempty"`
	Items       []Item    `json:"items,omitempty"`
	Commission  Price     `json:"commission"`
	MaxGas      uint64    `json:"max_gas"`
}

// Verify checks the structural invariants of a state snapshot: unique
// addresses, list lengths within capacity, items linked to exactly one list,
// and escrowed balances present for every open item.
func (s *AppState) Verify() error {
	accounts := map[Address]struct{}{}
	balances := map[Address]string{}
	for _, acc := range s.Accounts {
		if _, exists := accounts[acc.Address]; exists {
			return fmt.Errorf("duplicated account %s", acc.Address.String())
		}
		accounts[acc.Address] = struct{}{}

		if !helpers.IsValidBigInt(acc.Balance) {
			return fmt.Errorf("not valid balance for account %s", acc.Address.String())
		}
		balances[acc.Address] = acc.Balance
	}

	itemOwners := map[Address]Address{}
	lists := map[Address]struct{}{}
	for _, list := range s.Lists {
		if _, exists := lists[list.Address]; exists {
			return fmt.Errorf("duplicated list %s", list.Address.String())
		}
		lists[list.Address] = struct{}{}

		if len(list.Items) > int(list.Capacity) {
			return fmt.Errorf("list %s holds %d items over capacity %d",
				list.Address.String(), len(list.Items), list.Capacity)
		}

		for _, item := range list.Items {
			if owner, exists := itemOwners[item]; exists {
				return fmt.Errorf("item %s linked to both %s and %s",
					item.String(), owner.String(), list.Address.String())
			}
			itemOwners[item] = list.Address
		}
	}

	items := map[Address]struct{}{}
	for _, item := range s.Items {
		if _, exists := items[item.Address]; exists {
			return fmt.Errorf("duplicated item %s", item.Address.String())
		}
		items[item.Address] = struct{}{}

		if _, linked := itemOwners[item.Address]; !linked {
			return fmt.Errorf("item %s is not linked to any list", item.Address.String())
		}

		balance, funded := balances[item.Address]
		if !funded {
			return fmt.Errorf("item %s holds no escrowed balance", item.Address.String())
		}
		escrowed, _ := big.NewInt(0).SetString(balance, 10)
		if escrowed == nil || escrowed.Cmp(RentExemptMinimum(item.Name)) == -1 {
			return fmt.Errorf("item %s escrow is below rent-exempt minimum", item.Address.String())
		}
	}

	// every linked address must resolve to an item record
	for item := range itemOwners {
		if _, exists := items[item]; !exists {
			return fmt.Errorf("list links unknown item %s", item.String())
		}
	}

	prices := []string{
		s.Commission.PayloadByte, s.Commission.NewList, s.Commission.AddItem,
		s.Commission.CancelItem, s.Commission.FinishItem,
	}
	for _, price := range prices {
		if !helpers.IsValidBigInt(price) {
			return fmt.Errorf("commission price %s is not valid BigInt", price)
		}
	}

	return nil
}

type Account struct {
	Address Address `json:"address"`
	Balance string  `json:"balance"`
	Nonce   uint64  `json:"nonce"`
}

type List struct {
	Address  Address   `json:"address"`
	Owner    Address   `json:"owner"`
	Name     string    `json:"name"`
	Capacity uint16    `json:"capacity"`
	Bump     uint8     `json:"bump"`
	Items    []Address `json:"items,omitempty"`
}

type Item struct {
	Address           Address `json:"address"`
	Creator           Address `json:"creator"`
	Name              string  `json:"name"`
	CreatorFinished   bool    `json:"creator_finished"`
	ListOwnerFinished bool    `json:"list_owner_finished"`
}

type Price struct {
	PayloadByte string `json:"payload_byte"`
	NewList     string `json:"new_list"`
	AddItem     string `json:"add_item"`
	CancelItem  string `json:"cancel_item"`
	FinishItem  string `json:"finish_item"`
}
