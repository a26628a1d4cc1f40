package bus

import (
	"math/big"

	"github.com/TodoChain/todos-go-node/core/types"
)

type Accounts interface {
	AddBalance(types.Address, *big.Int)
	GetBalance(types.Address) *big.Int
}
