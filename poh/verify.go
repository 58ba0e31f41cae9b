package poh

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// VerifySliceSeq verifies entries were each derived in order from startHash.
// It is the sequential reference implementation: pure, total, and never
// panics or returns an error — only a boolean verdict. Exists for
// cross-testing against VerifySlice (see VerifySlice's doc comment) and as
// a baseline when parallelism isn't worth the overhead.
func VerifySliceSeq(entries []Entry, startHash Hash) bool {
	prevHash := startHash
	for _, cur := range entries {
		if !cur.Verify(prevHash) {
			return false
		}
		prevHash = cur.EndHash
	}
	return true
}

// VerifySlice verifies entries were each derived in order from startHash,
// the same contract as VerifySliceSeq, but checks independent (prev, cur)
// pairs across a worker pool. Each entry already carries the witness
// (EndHash) its successor needs, so a verifier can seed each worker's
// chunk directly from entries[lo-1].EndHash without re-deriving anything —
// that's the entire point of logging the running hash on every entry.
//
// Splitting entries into contiguous chunks and verifying each chunk's
// internal chain sequentially, in parallel across chunks, is the idiomatic
// Go analogue of a data-parallel map-reduce over the pair sequence; it does
// the same total amount of verification work as VerifySliceSeq, just spread
// across runtime.GOMAXPROCS(0) goroutines.
func VerifySlice(entries []Entry, startHash Hash) bool {
	n := len(entries)
	if n == 0 {
		return true
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunkSize := (n + workers - 1) / workers

	results := make([]bool, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunkSize
		if lo >= n {
			results[w] = true
			continue
		}
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		g.Go(func() error {
			prevHash := startHash
			if lo > 0 {
				prevHash = entries[lo-1].EndHash
			}
			ok := true
			for i := lo; i < hi; i++ {
				if !entries[i].Verify(prevHash) {
					ok = false
				}
				prevHash = entries[i].EndHash
			}
			results[w] = ok
			return nil
		})
	}
	_ = g.Wait() // worker funcs never return an error; only results[] matters

	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}
