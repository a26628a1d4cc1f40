package types

import "math/big"

// Persisted item record layout: record header (8) + creator (20) + finish
// flags (1+1) + length-prefixed name (4 + len). Rent is charged per byte.
const (
	itemRecordBaseSize = 8 + 20 + 1 + 1 + 4
	rentPerByte        = 6960
)

// RentExemptMinimum returns the minimum balance an item account must hold to
// persist on the ledger. A bounty below this would make the account
// reclaimable and destroy the escrow guarantee.
func RentExemptMinimum(name string) *big.Int {
	size := int64(itemRecordBaseSize + len(name))
	return big.NewInt(0).Mul(big.NewInt(size), big.NewInt(rentPerByte))
}
