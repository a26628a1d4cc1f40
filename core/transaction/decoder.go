package transaction

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rlp"
)

func GetData(txType TxType) (Data, bool) {
	switch txType {
	case TypeNewList:
		return &NewListData{}, true
	case TypeAddItem:
		return &AddItemData{}, true
	case TypeCancelItem:
		return &CancelItemData{}, true
	case TypeFinishItem:
		return &FinishItemData{}, true
	default:
		return nil, false
	}
}

// DecodeFromBytes deserializes the transaction and its signature
func (e *Executor) DecodeFromBytes(buf []byte) (*Transaction, error) {
	tx, err := e.DecodeFromBytesWithoutSig(buf)
	if err != nil {
		return nil, err
	}

	return DecodeSig(tx)
}

func DecodeSig(tx *Transaction) (*Transaction, error) {
	if tx.SignatureType != SigTypeSingle {
		return nil, errors.New("unknown signature type")
	}

	tx.sig = &Signature{}
	if err := rlp.DecodeBytes(tx.SignatureData, tx.sig); err != nil {
		return nil, err
	}

	return tx, nil
}

func (e *Executor) DecodeFromBytesWithoutSig(buf []byte) (*Transaction, error) {
	var tx Transaction
	err := rlp.DecodeBytes(buf, &tx)
	if err != nil {
		return nil, err
	}

	if tx.Data == nil {
		return nil, errors.New("incorrect tx data")
	}

	d, ok := e.decodeTxFunc(tx.Type)
	if !ok {
		return nil, fmt.Errorf("tx type %x is not registered", tx.Type)
	}

	err = rlp.DecodeBytes(tx.Data, d)
	if err != nil {
		return nil, err
	}

	tx.SetDecodedData(d)

	return &tx, nil
}
