package keystore_test

import (
	"path/filepath"
	"testing"

	"github.com/tolelom/pohlog/poh/signer"
	"github.com/tolelom/pohlog/wallet/keystore"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := signer.GenerateEd25519Signer()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "key.json")

	if err := keystore.Save(path, "correct horse battery staple", s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := keystore.Load(path, "correct horse battery staple")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.PublicKey() != s.PublicKey() {
		t.Error("loaded signer must have the same public key as the original")
	}

	msg := []byte("round trip check")
	if !signer.Verify(got.PublicKey(), msg, got.Sign(msg)) {
		t.Error("loaded signer must still produce valid signatures")
	}
}

func TestLoadWrongPasswordFails(t *testing.T) {
	s, err := signer.GenerateEd25519Signer()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "key.json")
	if err := keystore.Save(path, "hunter2", s); err != nil {
		t.Fatalf("save: %v", err)
	}

	if _, err := keystore.Load(path, "wrong password"); err == nil {
		t.Error("loading with the wrong password must fail")
	}
}
