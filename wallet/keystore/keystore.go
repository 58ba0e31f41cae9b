// Package keystore encrypts a signer's private key at rest using AES-GCM
// with a PBKDF2-derived key.
package keystore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"

	"golang.org/x/crypto/pbkdf2"

	"github.com/tolelom/pohlog/poh/signer"
)

type file struct {
	PubKey     string `json:"pub_key"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipher_text"`
}

// Save encrypts s's private key with password and writes it to path.
func Save(path, password string, s signer.Ed25519Signer) error {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return err
	}
	key := deriveKey(password, salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return err
	}
	cipherText := gcm.Seal(nil, nonce, s.Bytes(), nil)

	pub := s.PublicKey()
	f := file{
		PubKey:     hex.EncodeToString(pub[:]),
		Salt:       hex.EncodeToString(salt),
		Nonce:      hex.EncodeToString(nonce),
		CipherText: hex.EncodeToString(cipherText),
	}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Load decrypts the keystore at path using password.
func Load(path, password string) (signer.Ed25519Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return signer.Ed25519Signer{}, err
	}
	salt, err := hex.DecodeString(f.Salt)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}
	nonce, err := hex.DecodeString(f.Nonce)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}
	cipherText, err := hex.DecodeString(f.CipherText)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}

	key := deriveKey(password, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return signer.Ed25519Signer{}, err
	}
	privBytes, err := gcm.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return signer.Ed25519Signer{}, errors.New("wrong password or corrupted keystore")
	}
	return signer.NewEd25519Signer(privBytes)
}

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, 210_000, 32, sha256.New)
}
