package poh

// Entry is one chain step: the number of hashes performed since the
// previous entry, the resulting hash, and the event that was mixed into
// that hash to produce EndHash.
//
// If you multiply NumHashes by the time it takes to compute one hash, you
// get a duration estimate since the previous entry. Because processing power
// varies across verifiers, duration should be estimated assuming the hash
// was generated by the fastest processor at the time of logging.
type Entry struct {
	NumHashes uint64
	EndHash   Hash
	Event     Event
}

// Verify checks that e is a valid single step from startHash: any
// embedded signature is valid, and EndHash is the result of hashing
// startHash NumHashes times and then mixing in Event. An entry whose Event
// is nil or not one of the four event values does not verify.
func (e Entry) Verify(startHash Hash) bool {
	switch e.Event.(type) {
	case Tick, Discovery, Claim, Transaction:
	default:
		return false
	}
	if !verifyEventSignature(e.Event) {
		return false
	}
	h := startHash
	for i := uint64(0); i < e.NumHashes; i++ {
		h = HashBytes(h[:])
	}
	h = HashEvent(h, e.Event)
	return h == e.EndHash
}
