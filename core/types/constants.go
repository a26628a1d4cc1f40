package types

// ChainID is ID of the network (1 - mainnet, 2 - testnet)
type ChainID byte

const (
	// ChainMainnet is mainnet chain ID of the network
	ChainMainnet ChainID = 0x01
	// ChainTestnet is testnet chain ID of the network
	ChainTestnet ChainID = 0x02
)

// CurrentChainID is current ChainID of the network
var CurrentChainID = ChainMainnet

// ListNameSeedLength is the byte bound a list name is truncated to before it is
// fed into address derivation. Two names sharing the same truncated prefix
// derive the same list address; this is a documented property of the scheme.
const ListNameSeedLength = 32

// ListAddressSeed is the constant seed prepended to every list address derivation.
const ListAddressSeed = "todolist"
