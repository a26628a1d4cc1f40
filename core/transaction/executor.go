package transaction

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"

	abcTypes "github.com/tendermint/tendermint/abci/types"

	"github.com/TodoChain/todos-go-node/core/code"
	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/types"
)

const (
	maxPayloadLength     = 10000
	maxTxLength          = 6144 + maxPayloadLength
	maxServiceDataLength = 128
)

// Response represents standard response from tx delivery/check
type Response struct {
	Code      uint32                    `json:"code,omitempty"`
	Data      []byte                    `json:"data,omitempty"`
	Log       string                    `json:"log,omitempty"`
	Info      string                    `json:"-"`
	GasWanted int64                     `json:"gas_wanted,omitempty"`
	GasUsed   int64                     `json:"gas_used,omitempty"`
	Tags      []abcTypes.EventAttribute `json:"tags,omitempty"`
	GasPrice  uint32                    `json:"gas_price"`
}

type Executor struct {
	decodeTxFunc func(txType TxType) (Data, bool)
}

func NewExecutor(decodeTxFunc func(txType TxType) (Data, bool)) *Executor {
	return &Executor{decodeTxFunc: decodeTxFunc}
}

// RunTx executes transaction in given context
func (e *Executor) RunTx(context state.Interface, rawTx []byte, rewardPool *big.Int, currentBlock uint64, currentMempool *sync.Map, minGasPrice uint32, notSaveTags bool) Response {
	lenRawTx := len(rawTx)
	if lenRawTx > maxTxLength {
		return Response{
			Code: code.TxTooLarge,
			Log:  fmt.Sprintf("TX length is over %d bytes", maxTxLength),
			Info: EncodeError(code.NewTxTooLarge(fmt.Sprintf("%d", maxTxLength), fmt.Sprintf("%d", lenRawTx))),
		}
	}

	tx, err := e.DecodeFromBytes(rawTx)
	if err != nil {
		return Response{
			Code: code.DecodeError,
			Log:  err.Error(),
			Info: EncodeError(code.NewDecodeError()),
		}
	}

	if tx.ChainID != types.CurrentChainID {
		return Response{
			Code: code.WrongChainID,
			Log:  "Wrong chain id",
			Info: EncodeError(code.NewWrongChainID(fmt.Sprintf("%d", types.CurrentChainID), fmt.Sprintf("%d", tx.ChainID))),
		}
	}

	var checkState *state.CheckState
	var isCheck bool
	if checkState, isCheck = context.(*state.CheckState); !isCheck {
		checkState = state.NewCheckState(context.(*state.State))
	}

	if isCheck && tx.GasPrice < minGasPrice {
		return Response{
			Code: code.TooLowGasPrice,
			Log:  fmt.Sprintf("Gas price of tx is too low to be included in mempool. Expected %d", minGasPrice),
			Info: EncodeError(code.NewTooLowGasPrice(fmt.Sprintf("%d", minGasPrice), fmt.Sprintf("%d", tx.GasPrice))),
		}
	}

	lenPayload := len(tx.Payload)
	if lenPayload > maxPayloadLength {
		return Response{
			Code: code.TxPayloadTooLarge,
			Log:  fmt.Sprintf("TX payload length is over %d bytes", maxPayloadLength),
			Info: EncodeError(code.NewTxPayloadTooLarge(fmt.Sprintf("%d", maxPayloadLength), fmt.Sprintf("%d", lenPayload))),
		}
	}

	lenServiceData := len(tx.ServiceData)
	if lenServiceData > maxServiceDataLength {
		return Response{
			Code: code.TxServiceDataTooLarge,
			Log:  fmt.Sprintf("TX service data length is over %d bytes", maxServiceDataLength),
			Info: EncodeError(code.NewTxServiceDataTooLarge(fmt.Sprintf("%d", maxServiceDataLength), fmt.Sprintf("%d", lenServiceData))),
		}
	}

	sender, err := tx.Sender()
	if err != nil {
		return Response{
			Code: code.DecodeError,
			Log:  err.Error(),
			Info: EncodeError(code.NewDecodeError()),
		}
	}

	if expectedNonce := checkState.Accounts().GetNonce(sender) + 1; expectedNonce != tx.Nonce {
		return Response{
			Code: code.WrongNonce,
			Log:  fmt.Sprintf("Unexpected nonce. Expected: %d, got %d.", expectedNonce, tx.Nonce),
			Info: EncodeError(code.NewWrongNonce(fmt.Sprintf("%d", expectedNonce), fmt.Sprintf("%d", tx.Nonce))),
		}
	}

	commissions := checkState.Commission().GetCommissions()
	price := tx.Price(commissions)
	priceCommission := abcTypes.EventAttribute{Key: []byte("tx.commission_price"), Value: []byte(price.String())}

	response := tx.decodedData.Run(tx, context, rewardPool, currentBlock, price)
	if response.Code == code.OK && isCheck && currentMempool != nil {
		// check if mempool already has transactions from this address
		if _, has := currentMempool.LoadOrStore(sender, true); has {
			return Response{
				Code: code.TxFromSenderAlreadyInMempool,
				Log:  fmt.Sprintf("Tx from %s already exists in mempool", sender.String()),
				Info: EncodeError(code.NewTxFromSenderAlreadyInMempool(sender.String(), fmt.Sprintf("%d", currentBlock))),
			}
		}
	}

	if notSaveTags || isCheck {
		response.Tags = nil
	} else {
		response.Tags = append(response.Tags,
			priceCommission,
			abcTypes.EventAttribute{Key: []byte("tx.from"), Value: []byte(hex.EncodeToString(sender[:])), Index: true},
			abcTypes.EventAttribute{Key: []byte("tx.type"), Value: []byte(hex.EncodeToString([]byte{byte(tx.decodedData.TxType())})), Index: true},
		)
	}

	response.GasUsed = tx.Gas()
	response.GasWanted = response.GasUsed
	response.GasPrice = tx.GasPrice

	return response
}

// EncodeError encodes error to json
func EncodeError(data interface{}) string {
	marshaled, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	return string(marshaled)
}
