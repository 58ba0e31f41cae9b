package signer

import "testing"

func TestGenerateAndSignVerify(t *testing.T) {
	s, err := GenerateEd25519Signer()
	if err != nil {
		t.Fatal(err)
	}
	data := []byte("hello, world")
	sig := s.Sign(data)
	if !Verify(s.PublicKey(), data, sig) {
		t.Error("valid signature failed to verify")
	}
	if Verify(s.PublicKey(), []byte("tampered"), sig) {
		t.Error("tampered message should fail verification")
	}
}

func TestNewEd25519SignerRoundTrip(t *testing.T) {
	s, err := GenerateEd25519Signer()
	if err != nil {
		t.Fatal(err)
	}
	raw := s.Bytes()
	restored, err := NewEd25519Signer(raw)
	if err != nil {
		t.Fatal(err)
	}
	if restored.PublicKey() != s.PublicKey() {
		t.Error("restored signer's public key should match the original")
	}
	data := []byte("round trip")
	if !Verify(restored.PublicKey(), data, restored.Sign(data)) {
		t.Error("restored signer should still produce valid signatures")
	}
}

func TestNewEd25519SignerRejectsWrongSize(t *testing.T) {
	if _, err := NewEd25519Signer([]byte{1, 2, 3}); err == nil {
		t.Error("expected an error for a short key")
	}
}
