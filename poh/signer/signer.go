// Package signer provides the abstract signing/verification primitives the
// poh package consumes. The core never stores private keys; it only sees a
// Signer (and, for verification, a PublicKey/Signature pair).
package signer

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
)

// PublicKey is a fixed-size Ed25519-class public key.
type PublicKey [32]byte

// Signature is a fixed-size Ed25519-class signature.
type Signature [64]byte

// Signer is the abstraction the core signs events through. Implementations
// own their private key material; the core only ever calls these two
// methods and never touches the key itself.
type Signer interface {
	PublicKey() PublicKey
	Sign(data []byte) Signature
}

// Verify checks a signature against a message under the Ed25519 scheme.
// The core calls this function directly for Claim and Transaction
// signatures; there is no hook to substitute another scheme's verifier.
func Verify(pub PublicKey, msg []byte, sig Signature) bool {
	return ed25519.Verify(pub[:], msg, sig[:])
}

// Ed25519Signer wraps a standard library ed25519 private key as a Signer.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
}

// GenerateEd25519Signer creates a fresh random Ed25519 key pair.
func GenerateEd25519Signer() (Ed25519Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Ed25519Signer{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return Ed25519Signer{priv: priv}, nil
}

// NewEd25519Signer wraps an existing raw ed25519 private key (64 bytes, the
// standard library's seed||pubkey encoding).
func NewEd25519Signer(priv []byte) (Ed25519Signer, error) {
	if len(priv) != ed25519.PrivateKeySize {
		return Ed25519Signer{}, fmt.Errorf("ed25519 private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	cp := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(cp, priv)
	return Ed25519Signer{priv: cp}, nil
}

// PublicKey returns the public half of the key pair.
func (s Ed25519Signer) PublicKey() PublicKey {
	var pub PublicKey
	copy(pub[:], s.priv.Public().(ed25519.PublicKey))
	return pub
}

// Sign signs data with the wrapped private key.
func (s Ed25519Signer) Sign(data []byte) Signature {
	var sig Signature
	copy(sig[:], ed25519.Sign(s.priv, data))
	return sig
}

// Bytes returns the raw private key bytes, for callers (e.g. an encrypted
// keystore) that need to persist the key material. Handle with care.
func (s Ed25519Signer) Bytes() []byte {
	cp := make([]byte, len(s.priv))
	copy(cp, s.priv)
	return cp
}
