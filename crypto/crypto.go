package crypto

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/TodoChain/todos-go-node/core/types"
	"github.com/btcsuite/btcd/btcec"
	"golang.org/x/crypto/sha3"
)

var (
	secp256k1N     = btcec.S256().Params().N
	secp256k1halfN = new(big.Int).Rsh(secp256k1N, 1)
)

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h types.Hash) {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	d.Sum(h[:0])
	return h
}

// GenerateKey generates a new secp256k1 private key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(btcec.S256(), rand.Reader)
}

// ToECDSA creates a private key with the given D value.
func ToECDSA(d []byte) (*ecdsa.PrivateKey, error) {
	if len(d) != 32 {
		return nil, fmt.Errorf("invalid length, need 256 bits")
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), d)
	return priv.ToECDSA(), nil
}

// FromECDSA exports a private key into a binary dump.
func FromECDSA(priv *ecdsa.PrivateKey) []byte {
	if priv == nil {
		return nil
	}
	return priv.D.FillBytes(make([]byte, 32))
}

// FromECDSAPub exports a public key into the 65-byte uncompressed format.
func FromECDSAPub(pub *ecdsa.PublicKey) []byte {
	if pub == nil || pub.X == nil || pub.Y == nil {
		return nil
	}
	return elliptic.Marshal(btcec.S256(), pub.X, pub.Y)
}

// PubkeyToAddress derives the ledger address of the given public key.
func PubkeyToAddress(p ecdsa.PublicKey) types.Address {
	pubBytes := FromECDSAPub(&p)
	return types.BytesToAddress(Keccak256(pubBytes[1:])[12:])
}

// Sign calculates an ECDSA signature over the given 32-byte hash.
// The produced signature is in the [R || S || V] format where V is 0 or 1.
func Sign(hash []byte, prv *ecdsa.PrivateKey) ([]byte, error) {
	if len(hash) != 32 {
		return nil, fmt.Errorf("hash is required to be exactly 32 bytes (%d)", len(hash))
	}

	key := (*btcec.PrivateKey)(prv)
	compact, err := btcec.SignCompact(btcec.S256(), key, hash, false)
	if err != nil {
		return nil, err
	}

	// btcec returns [V || R || S] with V in 27..30; rearrange to [R || S || V].
	sig := make([]byte, 65)
	copy(sig, compact[1:])
	sig[64] = compact[0] - 27

	return sig, nil
}

// Ecrecover returns the uncompressed public key that created the given
// signature over the given hash.
func Ecrecover(hash, sig []byte) ([]byte, error) {
	if len(sig) != 65 {
		return nil, errors.New("invalid signature length")
	}

	compact := make([]byte, 65)
	compact[0] = sig[64] + 27
	copy(compact[1:], sig[:64])

	pub, _, err := btcec.RecoverCompact(btcec.S256(), compact, hash)
	if err != nil {
		return nil, err
	}

	return pub.SerializeUncompressed(), nil
}

// ValidateSignatureValues verifies whether the signature values are valid with
// the given chain rules. The v value is assumed to be either 0 or 1.
func ValidateSignatureValues(v byte, r, s *big.Int, homestead bool) bool {
	if r.Cmp(big.NewInt(1)) < 0 || s.Cmp(big.NewInt(1)) < 0 {
		return false
	}
	// reject upper range of s values (ECDSA malleability)
	if homestead && s.Cmp(secp256k1halfN) > 0 {
		return false
	}
	// frontier: allow s to be in full N range
	return r.Cmp(secp256k1N) < 0 && s.Cmp(secp256k1N) < 0 && (v == 0 || v == 1)
}
