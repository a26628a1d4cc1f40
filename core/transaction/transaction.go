package transaction

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/TodoChain/todos-go-node/core/state"
	"github.com/TodoChain/todos-go-node/core/state/commission"
	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/TodoChain/todos-go-node/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"golang.org/x/crypto/sha3"
)

// TxType of transaction is determined by a single byte.
type TxType byte

func (t TxType) String() string {
	return "0x" + hex.EncodeToString([]byte{byte(t)})
}

func (t TxType) UInt64() uint64 {
	return uint64(t)
}

const (
	TypeNewList    TxType = 0x01
	TypeAddItem    TxType = 0x02
	TypeCancelItem TxType = 0x03
	TypeFinishItem TxType = 0x04
)

const (
	gasBase = 15

	gasNewList    = 10
	gasAddItem    = 5
	gasCancelItem = 5
	gasFinishItem = 5
)

type SigType byte

const (
	SigTypeSingle SigType = 0x01
)

var (
	ErrInvalidSig = errors.New("invalid transaction v, r, s values")
)

type Transaction struct {
	Nonce         uint64
	ChainID       types.ChainID
	GasPrice      uint32
	Type          TxType
	Data          RawData
	Payload       []byte
	ServiceData   []byte
	SignatureType SigType
	SignatureData []byte

	decodedData Data
	sig         *Signature
	sender      *types.Address
}

type Signature struct {
	V *big.Int
	R *big.Int
	S *big.Int
}

type RawData []byte

type Data interface {
	String() string
	CommissionData(*commission.Price) *big.Int
	Run(tx *Transaction, context state.Interface, rewardPool *big.Int, currentBlock uint64, price *big.Int) Response
	TxType() TxType
	Gas() int64
}

func (tx *Transaction) Serialize() ([]byte, error) {
	return rlp.EncodeToBytes(tx)
}

func (tx *Transaction) Gas() int64 {
	base := int64(gasBase)
	if tx.payloadAndServiceDataLen() != 0 {
		base += tx.payloadAndServiceDataLen() / 1000
	}
	return base + tx.decodedData.Gas()
}

func (tx *Transaction) Price(price *commission.Price) *big.Int {
	payloadAndServiceData := big.NewInt(0).Mul(big.NewInt(tx.payloadAndServiceDataLen()), price.PayloadByte)
	return big.NewInt(0).Add(tx.decodedData.CommissionData(price), payloadAndServiceData)
}

func (tx *Transaction) payloadAndServiceDataLen() int64 {
	return int64(len(tx.Payload) + len(tx.ServiceData))
}

// MulGasPrice returns price multiplied by gasPrice
func (tx *Transaction) MulGasPrice(price *big.Int) *big.Int {
	return big.NewInt(0).Mul(big.NewInt(int64(tx.GasPrice)), price)
}

func (tx *Transaction) String() string {
	sender, _ := tx.Sender()

	return fmt.Sprintf("TX nonce:%d from:%s payload:%s data:%s",
		tx.Nonce, sender.String(), tx.Payload, tx.decodedData.String())
}

func (tx *Transaction) Sign(prv *ecdsa.PrivateKey) error {
	h := tx.Hash()
	sig, err := crypto.Sign(h[:], prv)
	if err != nil {
		return err
	}

	tx.SetSignature(sig)

	return nil
}

func (tx *Transaction) SetSignature(sig []byte) {
	if tx.sig == nil {
		tx.sig = &Signature{}
	}

	tx.sig.R = new(big.Int).SetBytes(sig[:32])
	tx.sig.S = new(big.Int).SetBytes(sig[32:64])
	tx.sig.V = new(big.Int).SetBytes([]byte{sig[64] + 27})

	data, err := rlp.EncodeToBytes(tx.sig)
	if err != nil {
		panic(err)
	}

	tx.SignatureData = data
}

func (tx *Transaction) MustSender() types.Address {
	sender, err := tx.Sender()
	if err != nil {
		panic(err)
	}
	return sender
}

func (tx *Transaction) Sender() (types.Address, error) {
	if tx.sender != nil {
		return *tx.sender, nil
	}

	if tx.SignatureType != SigTypeSingle {
		return types.Address{}, errors.New("unknown signature type")
	}

	sender, err := RecoverPlain(tx.Hash(), tx.sig.R, tx.sig.S, tx.sig.V)
	if err != nil {
		return types.Address{}, err
	}

	tx.sender = &sender
	return sender, nil
}

func (tx *Transaction) Hash() types.Hash {
	return rlpHash([]interface{}{
		tx.Nonce,
		tx.ChainID,
		tx.GasPrice,
		tx.Type,
		tx.Data,
		tx.Payload,
		tx.ServiceData,
		tx.SignatureType,
	})
}

func (tx *Transaction) SetDecodedData(data Data) {
	tx.decodedData = data
}

func (tx *Transaction) GetDecodedData() Data {
	return tx.decodedData
}

func RecoverPlain(sighash types.Hash, R, S, Vb *big.Int) (types.Address, error) {
	if Vb.BitLen() > 8 {
		return types.Address{}, ErrInvalidSig
	}
	V := byte(Vb.Uint64() - 27)
	if !crypto.ValidateSignatureValues(V, R, S, true) {
		return types.Address{}, ErrInvalidSig
	}
	// encode the signature in uncompressed format
	r, s := R.Bytes(), S.Bytes()
	sig := make([]byte, 65)
	copy(sig[32-len(r):32], r)
	copy(sig[64-len(s):64], s)
	sig[64] = V

	// recover the public key from the signature
	pub, err := crypto.Ecrecover(sighash[:], sig)
	if err != nil {
		return types.Address{}, err
	}
	if len(pub) == 0 || pub[0] != 4 {
		return types.Address{}, errors.New("invalid public key")
	}
	var addr types.Address
	copy(addr[:], crypto.Keccak256(pub[1:])[12:])
	return addr, nil
}

func rlpHash(x interface{}) (h types.Hash) {
	hw := sha3.NewLegacyKeccak256()
	err := rlp.Encode(hw, x)
	if err != nil {
		panic(err)
	}
	hw.Sum(h[:0])
	return h
}
