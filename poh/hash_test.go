package poh

import "testing"

func TestHashBytesDeterministic(t *testing.T) {
	a := HashBytes([]byte("hello, world"))
	b := HashBytes([]byte("hello, world"))
	if a != b {
		t.Error("HashBytes is not deterministic")
	}
	c := HashBytes([]byte("goodbye cruel world"))
	if a == c {
		t.Error("different inputs hashed to the same digest")
	}
}

func TestZeroHash(t *testing.T) {
	var zero Hash
	if !zero.IsZero() {
		t.Error("default Hash value should be zero")
	}
	if HashBytes(zero[:]).IsZero() {
		t.Error("hash of the zero value should not itself be zero")
	}
}

func TestExtendHashTagSeparates(t *testing.T) {
	zero := ZeroHash
	a := ExtendHash(zero, 0x01, []byte("payload"))
	b := ExtendHash(zero, 0x02, []byte("payload"))
	if a == b {
		t.Error("different tag bytes must not collide for the same payload")
	}
}
