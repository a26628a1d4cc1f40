package commission

import (
	"math/big"

	"github.com/TodoChain/todos-go-node/helpers"
	"github.com/ethereum/go-ethereum/rlp"
)

// Price is the current commission table: one price per transaction type plus
// a per-byte price for the tx payload.
type Price struct {
	PayloadByte *big.Int
	NewList     *big.Int
	AddItem     *big.Int
	CancelItem  *big.Int
	FinishItem  *big.Int
}

func (d *Price) Encode() []byte {
	bytes, err := rlp.EncodeToBytes(d)
	if err != nil {
		panic(err)
	}
	return bytes
}

func Decode(s []byte) *Price {
	p := new(Price)
	err := rlp.DecodeBytes(s, p)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultPrice is the genesis commission table, in nano.
func DefaultPrice() *Price {
	return &Price{
		PayloadByte: helpers.StringToBigInt("2000000"),
		NewList:     helpers.StringToBigInt("100000000"),
		AddItem:     helpers.StringToBigInt("10000000"),
		CancelItem:  helpers.StringToBigInt("10000000"),
		FinishItem:  helpers.StringToBigInt("10000000"),
	}
}
