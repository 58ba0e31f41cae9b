package poh

import "testing"

func TestNextTickNumHashes(t *testing.T) {
	zero := ZeroHash
	if got := NextTick(zero, 1).NumHashes; got != 1 {
		t.Errorf("NumHashes: got %d want 1", got)
	}
}

func TestCreateTicksThreadsRunningHash(t *testing.T) {
	zero := ZeroHash
	ticks := CreateTicks(zero, 3, 4)
	if len(ticks) != 4 {
		t.Fatalf("len: got %d want 4", len(ticks))
	}
	prev := zero
	for i, e := range ticks {
		if !e.Verify(prev) {
			t.Fatalf("tick %d failed to verify from its predecessor's end hash", i)
		}
		prev = e.EndHash
	}
}

func TestCreateEntriesThreadsRunningHash(t *testing.T) {
	zero := ZeroHash
	events := []Event{
		Discovery{Data: zero},
		Discovery{Data: HashBytes(zero[:])},
	}
	entries := CreateEntries(zero, 0, events)
	if len(entries) != 2 {
		t.Fatalf("len: got %d want 2", len(entries))
	}
	if entries[0].EndHash == entries[1].EndHash {
		t.Error("distinct events at the same offset must not collide in end hash")
	}
	prev := zero
	for i, e := range entries {
		if !e.Verify(prev) {
			t.Fatalf("entry %d failed to verify from its predecessor's end hash", i)
		}
		prev = e.EndHash
	}
}
