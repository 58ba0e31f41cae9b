package poh

// NextHash computes the hash that would result from extending start by
// numHashes iterations of the plain hash function and then mixing in ev.
func NextHash(start Hash, numHashes uint64, ev Event) Hash {
	h := start
	for i := uint64(0); i < numHashes; i++ {
		h = HashBytes(h[:])
	}
	return HashEvent(h, ev)
}

// NextEntry builds the Entry that results from extending start by
// numHashes and mixing in ev, without mutating start.
func NextEntry(start Hash, numHashes uint64, ev Event) Entry {
	return Entry{
		NumHashes: numHashes,
		EndHash:   NextHash(start, numHashes, ev),
		Event:     ev,
	}
}

// NextEntryMut builds the next entry from *start and advances *start to the
// entry's EndHash, threading the running hash through repeated calls.
func NextEntryMut(start *Hash, numHashes uint64, ev Event) Entry {
	entry := NextEntry(*start, numHashes, ev)
	*start = entry.EndHash
	return entry
}

// NextTick builds the next Tick entry, numHashes after start.
func NextTick(start Hash, numHashes uint64) Entry {
	return NextEntry(start, numHashes, Tick{})
}

// CreateTicks produces length Tick entries chained from start, each spaced
// numHashes apart. The running hash is threaded through: entry i's EndHash
// becomes entry i+1's start hash.
func CreateTicks(start Hash, numHashes uint64, length int) []Entry {
	entries := make([]Entry, 0, length)
	h := start
	for i := 0; i < length; i++ {
		entries = append(entries, NextEntryMut(&h, numHashes, Tick{}))
	}
	return entries
}

// CreateEntries is the analogue of CreateTicks for caller-supplied events,
// each spaced numHashes apart.
func CreateEntries(start Hash, numHashes uint64, events []Event) []Entry {
	entries := make([]Entry, 0, len(events))
	h := start
	for _, ev := range events {
		entries = append(entries, NextEntryMut(&h, numHashes, ev))
	}
	return entries
}
