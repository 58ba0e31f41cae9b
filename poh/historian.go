package poh

import (
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned by Submit once the historian has begun shutting
// down; the caller should stop sending.
var ErrClosed = errors.New("poh: historian is closed")

// Historian is the dedicated background producer that folds submitted
// events into a running hash and emits entries. Construct one with
// NewHistorian; it starts hashing immediately on its own goroutine.
type Historian struct {
	submit  chan Event
	out     chan Entry
	closing chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewHistorian starts a Historian seeded at startHash. When
// tickIntervalHashes is non-nil, the historian emits a spontaneous Tick
// entry every *tickIntervalHashes idle hashes; when nil, it only emits on
// submitted events.
func NewHistorian(startHash Hash, tickIntervalHashes *uint64) *Historian {
	h := &Historian{
		submit:  make(chan Event),
		out:     make(chan Entry, 128),
		closing: make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go h.run(startHash, tickIntervalHashes)
	return h
}

// Submit hands ev to the historian to be folded into the chain. It blocks
// until the historian observes it, or returns ErrClosed if Close has
// already been called.
func (h *Historian) Submit(ev Event) error {
	select {
	case h.submit <- ev:
		return nil
	case <-h.closing:
		return ErrClosed
	}
}

// Entries returns the channel of emitted entries, in chain order. It is
// closed once the historian has fully shut down.
func (h *Historian) Entries() <-chan Entry {
	return h.out
}

// Close signals the historian to stop accepting new submissions, drain any
// in-flight ones, stop spontaneous ticking, close the entries channel, and
// exit. It blocks until shutdown is complete. Close is idempotent.
func (h *Historian) Close() {
	h.once.Do(func() { close(h.closing) })
	<-h.stopped
}

// run is the hashing loop. It locks to its OS thread for its entire
// lifetime: the VDF property requires a real lower bound on elapsed time
// between emissions, and a cooperatively-yielded goroutine would make an
// arbitrary scheduler pause indistinguishable from extra hash ticks.
func (h *Historian) run(startHash Hash, tickIntervalHashes *uint64) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(h.out)
	defer close(h.stopped)

	runningHash := startHash
	var numHashesSinceEmit uint64
	shuttingDown := false

	for {
		if shuttingDown {
			select {
			case ev := <-h.submit:
				entry := NextEntryMut(&runningHash, numHashesSinceEmit, ev)
				numHashesSinceEmit = 0
				h.out <- entry
			default:
				return
			}
			continue
		}

		select {
		case ev := <-h.submit:
			entry := NextEntryMut(&runningHash, numHashesSinceEmit, ev)
			numHashesSinceEmit = 0
			h.out <- entry
			continue
		case <-h.closing:
			shuttingDown = true
			continue
		default:
		}

		runningHash = HashBytes(runningHash[:])
		numHashesSinceEmit++
		if tickIntervalHashes != nil && numHashesSinceEmit == *tickIntervalHashes {
			entry := Entry{NumHashes: numHashesSinceEmit, EndHash: runningHash, Event: Tick{}}
			numHashesSinceEmit = 0
			h.out <- entry
		}
	}
}
