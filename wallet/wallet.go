// Package wallet provides a high-level signer-backed helper for building
// signed events, on top of the low-level constructors in poh.
package wallet

import (
	"github.com/tolelom/pohlog/poh"
	"github.com/tolelom/pohlog/poh/signer"
)

// Wallet pairs a Signer with convenience methods for the two signed event
// kinds the log supports.
type Wallet struct {
	signer signer.Ed25519Signer
}

// New wraps an existing Ed25519Signer as a Wallet.
func New(s signer.Ed25519Signer) *Wallet {
	return &Wallet{signer: s}
}

// Generate creates a Wallet with a freshly generated key pair.
func Generate() (*Wallet, error) {
	s, err := signer.GenerateEd25519Signer()
	if err != nil {
		return nil, err
	}
	return New(s), nil
}

// PublicKey returns the wallet's public key.
func (w *Wallet) PublicKey() signer.PublicKey {
	return w.signer.PublicKey()
}

// Signer returns the underlying signer, e.g. to persist it via a keystore.
func (w *Wallet) Signer() signer.Ed25519Signer {
	return w.signer
}

// Claim builds a signed Claim event witnessing data.
func (w *Wallet) Claim(data poh.Hash) poh.Claim {
	return poh.SignHash(data, w.signer)
}

// Transfer builds a signed Transaction event moving data's ownership to to.
func (w *Wallet) Transfer(data poh.Hash, to signer.PublicKey) poh.Transaction {
	return poh.TransferHash(data, w.signer, to)
}
