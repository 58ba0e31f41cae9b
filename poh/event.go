package poh

import (
	"fmt"

	"github.com/tolelom/pohlog/poh/signer"
)

// Event is a sealed tagged union of what can happen between two chain steps.
// isEvent is unexported so the variant set is closed to this package: Tick,
// Discovery, Claim, and Transaction are the only implementations.
type Event interface {
	isEvent()
}

// Tick carries no payload; it exists purely to advance the hash chain and
// let a verifier split the chain into independently checkable segments.
// H_event(h, Tick) is the identity on h — this is a contract, not an
// optimization, and is what makes parallel verification possible.
type Tick struct{}

func (Tick) isEvent() {}

// Discovery is an unsigned witness of some value.
type Discovery struct {
	Data Hash
}

func (Discovery) isEvent() {}

// Claim asserts that Key signed Data. Sig must be a valid signature by Key
// over Data for the entry carrying this event to verify.
type Claim struct {
	Key  signer.PublicKey
	Data Hash
	Sig  signer.Signature
}

func (Claim) isEvent() {}

// Transaction asserts a transfer of Data's ownership from From to To. Sig
// must be a valid signature by From over Data‖To.
type Transaction struct {
	From signer.PublicKey
	To   signer.PublicKey
	Data Hash
	Sig  signer.Signature
}

func (Transaction) isEvent() {}

// HashEvent is the event-extension function H_event(h, event). The tag byte
// for Claim and Transaction intentionally collides at 0x02: the payloads
// that follow differ in length and field order, so pre-image resistance
// still domain-separates them through content. This exact byte layout is
// normative and must not change.
func HashEvent(h Hash, ev Event) Hash {
	switch e := ev.(type) {
	case Tick:
		return h
	case Discovery:
		return ExtendHash(h, 0x01, e.Data[:])
	case Claim:
		payload := make([]byte, 0, len(e.Data)+len(e.Sig)+len(e.Key))
		payload = append(payload, e.Data[:]...)
		payload = append(payload, e.Sig[:]...)
		payload = append(payload, e.Key[:]...)
		return ExtendHash(h, 0x02, payload)
	case Transaction:
		payload := make([]byte, 0, len(e.Data)+len(e.Sig)+len(e.From)+len(e.To))
		payload = append(payload, e.Data[:]...)
		payload = append(payload, e.Sig[:]...)
		payload = append(payload, e.From[:]...)
		payload = append(payload, e.To[:]...)
		return ExtendHash(h, 0x02, payload)
	default:
		panic(fmt.Sprintf("poh: unknown event type %T", ev))
	}
}

// verifyEventSignature checks invariant I2: Claim/Transaction events must
// carry a valid signature. Tick and Discovery are unsigned and always pass.
func verifyEventSignature(ev Event) bool {
	switch e := ev.(type) {
	case Claim:
		return signer.Verify(e.Key, e.Data[:], e.Sig)
	case Transaction:
		msg := make([]byte, 0, len(e.Data)+len(e.To))
		msg = append(msg, e.Data[:]...)
		msg = append(msg, e.To[:]...)
		return signer.Verify(e.From, msg, e.Sig)
	default:
		return true
	}
}

// SignHash is the sanctioned way to build a Claim: it signs data with s and
// embeds s's public key alongside the signature.
func SignHash(data Hash, s signer.Signer) Claim {
	return Claim{
		Key:  s.PublicKey(),
		Data: data,
		Sig:  s.Sign(data[:]),
	}
}

// TransferHash is the sanctioned way to build a Transaction: it signs
// data‖to with s, recording s's public key as the sender.
func TransferHash(data Hash, s signer.Signer, to signer.PublicKey) Transaction {
	msg := make([]byte, 0, len(data)+len(to))
	msg = append(msg, data[:]...)
	msg = append(msg, to[:]...)
	return Transaction{
		From: s.PublicKey(),
		To:   to,
		Data: data,
		Sig:  s.Sign(msg),
	}
}
