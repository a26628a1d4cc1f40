package code

import (
	"strconv"
)

// Codes for transaction checks and delivers responses
const (
	// general
	OK                           uint32 = 0
	WrongNonce                   uint32 = 101
	AccountNotInitialized        uint32 = 102
	AccountAlreadyInUse          uint32 = 103
	TxTooLarge                   uint32 = 105
	DecodeError                  uint32 = 106
	InsufficientFunds            uint32 = 107
	TxPayloadTooLarge            uint32 = 109
	TxServiceDataTooLarge        uint32 = 110
	TxFromSenderAlreadyInMempool uint32 = 113
	TooLowGasPrice               uint32 = 114
	WrongChainID                 uint32 = 115

	// todolist
	ListFull          uint32 = 201
	BountyTooSmall    uint32 = 202
	CancelPermissions uint32 = 203
	FinishPermissions uint32 = 204
	ItemNotFound      uint32 = 205
	WrongListOwner    uint32 = 206
	WrongItemCreator  uint32 = 207
	WrongListAddress  uint32 = 208
)

type wrongNonce struct {
	Code          string `json:"code,omitempty"`
	ExpectedNonce string `json:"expected_nonce,omitempty"`
	GotNonce      string `json:"got_nonce,omitempty"`
}

func NewWrongNonce(expectedNonce string, gotNonce string) *wrongNonce {
	return &wrongNonce{Code: strconv.Itoa(int(WrongNonce)), ExpectedNonce: expectedNonce, GotNonce: gotNonce}
}

type accountNotInitialized struct {
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewAccountNotInitialized(address string) *accountNotInitialized {
	return &accountNotInitialized{Code: strconv.Itoa(int(AccountNotInitialized)), Address: address}
}

type accountAlreadyInUse struct {
	Code    string `json:"code,omitempty"`
	Address string `json:"address,omitempty"`
}

func NewAccountAlreadyInUse(address string) *accountAlreadyInUse {
	return &accountAlreadyInUse{Code: strconv.Itoa(int(AccountAlreadyInUse)), Address: address}
}

type txTooLarge struct {
	Code        string `json:"code,omitempty"`
	MaxTxLength string `json:"max_tx_length,omitempty"`
	GotTxLength string `json:"got_tx_length,omitempty"`
}

func NewTxTooLarge(maxTxLength string, gotTxLength string) *txTooLarge {
	return &txTooLarge{Code: strconv.Itoa(int(TxTooLarge)), MaxTxLength: maxTxLength, GotTxLength: gotTxLength}
}

type decodeError struct {
	Code string `json:"code,omitempty"`
}

func NewDecodeError() *decodeError {
	return &decodeError{Code: strconv.Itoa(int(DecodeError))}
}

type insufficientFunds struct {
	Code        string `json:"code,omitempty"`
	Sender      string `json:"sender,omitempty"`
	NeededValue string `json:"needed_value,omitempty"`
}

func NewInsufficientFunds(sender string, neededValue string) *insufficientFunds {
	return &insufficientFunds{Code: strconv.Itoa(int(InsufficientFunds)), Sender: sender, NeededValue: neededValue}
}

type txPayloadTooLarge struct {
	Code             string `json:"code,omitempty"`
	MaxPayloadLength string `json:"max_payload_length,omitempty"`
	GotPayloadLength string `json:"got_payload_length,omitempty"`
}

func NewTxPayloadTooLarge(maxPayloadLength string, gotPayloadLength string) *txPayloadTooLarge {
	return &txPayloadTooLarge{Code: strconv.Itoa(int(TxPayloadTooLarge)), MaxPayloadLength: maxPayloadLength, GotPayloadLength: gotPayloadLength}
}

type txServiceDataTooLarge struct {
	Code                 string `json:"code,omitempty"`
	MaxServiceDataLength string `json:"max_service_data_length,omitempty"`
	GotServiceDataLength string `json:"got_service_data_length,omitempty"`
}

func NewTxServiceDataTooLarge(maxServiceDataLength string, gotServiceDataLength string) *txServiceDataTooLarge {
	return &txServiceDataTooLarge{Code: strconv.Itoa(int(TxServiceDataTooLarge)), MaxServiceDataLength: maxServiceDataLength, GotServiceDataLength: gotServiceDataLength}
}

type txFromSenderAlreadyInMempool struct {
	Code        string `json:"code,omitempty"`
	Sender      string `json:"sender,omitempty"`
	BlockHeight string `json:"block_height,omitempty"`
}

func NewTxFromSenderAlreadyInMempool(sender string, block string) *txFromSenderAlreadyInMempool {
	return &txFromSenderAlreadyInMempool{Code: strconv.Itoa(int(TxFromSenderAlreadyInMempool)), Sender: sender, BlockHeight: block}
}

type tooLowGasPrice struct {
	Code        string `json:"code,omitempty"`
	MinGasPrice string `json:"min_gas_price,omitempty"`
	GotGasPrice string `json:"got_gas_price,omitempty"`
}

func NewTooLowGasPrice(minGasPrice string, gotGasPrice string) *tooLowGasPrice {
	return &tooLowGasPrice{Code: strconv.Itoa(int(TooLowGasPrice)), MinGasPrice: minGasPrice, GotGasPrice: gotGasPrice}
}

type wrongChainID struct {
	Code           string `json:"code,omitempty"`
	CurrentChainID string `json:"current_chain_id,omitempty"`
	GotChainID     string `json:"got_chain_id,omitempty"`
}

func NewWrongChainID(currentChainID string, gotChainID string) *wrongChainID {
	return &wrongChainID{Code: strconv.Itoa(int(WrongChainID)), CurrentChainID: currentChainID, GotChainID: gotChainID}
}

type listFull struct {
	Code     string `json:"code,omitempty"`
	List     string `json:"list,omitempty"`
	Capacity string `json:"capacity,omitempty"`
}

func NewListFull(list string, capacity string) *listFull {
	return &listFull{Code: strconv.Itoa(int(ListFull)), List: list, Capacity: capacity}
}

type bountyTooSmall struct {
	Code      string `json:"code,omitempty"`
	GotBounty string `json:"got_bounty,omitempty"`
	MinBounty string `json:"min_bounty,omitempty"`
}

func NewBountyTooSmall(gotBounty string, minBounty string) *bountyTooSmall {
	return &bountyTooSmall{Code: strconv.Itoa(int(BountyTooSmall)), GotBounty: gotBounty, MinBounty: minBounty}
}

type cancelPermissions struct {
	Code   string `json:"code,omitempty"`
	Sender string `json:"sender,omitempty"`
	Item   string `json:"item,omitempty"`
}

func NewCancelPermissions(sender string, item string) *cancelPermissions {
	return &cancelPermissions{Code: strconv.Itoa(int(CancelPermissions)), Sender: sender, Item: item}
}

type finishPermissions struct {
	Code   string `json:"code,omitempty"`
	Sender string `json:"sender,omitempty"`
	Item   string `json:"item,omitempty"`
}

func NewFinishPermissions(sender string, item string) *finishPermissions {
	return &finishPermissions{Code: strconv.Itoa(int(FinishPermissions)), Sender: sender, Item: item}
}

type itemNotFound struct {
	Code string `json:"code,omitempty"`
	List string `json:"list,omitempty"`
	Item string `json:"item,omitempty"`
}

func NewItemNotFound(list string, item string) *itemNotFound {
	return &itemNotFound{Code: strconv.Itoa(int(ItemNotFound)), List: list, Item: item}
}

type wrongListOwner struct {
	Code     string `json:"code,omitempty"`
	List     string `json:"list,omitempty"`
	GotOwner string `json:"got_owner,omitempty"`
}

func NewWrongListOwner(list string, gotOwner string) *wrongListOwner {
	return &wrongListOwner{Code: strconv.Itoa(int(WrongListOwner)), List: list, GotOwner: gotOwner}
}

type wrongItemCreator struct {
	Code       string `json:"code,omitempty"`
	Item       string `json:"item,omitempty"`
	GotCreator string `json:"got_creator,omitempty"`
}

func NewWrongItemCreator(item string, gotCreator string) *wrongItemCreator {
	return &wrongItemCreator{Code: strconv.Itoa(int(WrongItemCreator)), Item: item, GotCreator: gotCreator}
}

type wrongListAddress struct {
	Code           string `json:"code,omitempty"`
	DerivedAddress string `json:"derived_address,omitempty"`
	GotAddress     string `json:"got_address,omitempty"`
}

func NewWrongListAddress(derivedAddress string, gotAddress string) *wrongListAddress {
	return &wrongListAddress{Code: strconv.Itoa(int(WrongListAddress)), DerivedAddress: derivedAddress, GotAddress: gotAddress}
}
