// Package bus fans committed Historian entries out to subscribers without
// making the historian itself wait on slow or misbehaving consumers. It is
// the external consumer side of the dataflow: historian -> entries -> bus
// -> subscribers (indexer, metrics, UI).
package bus

import (
	"log"
	"sync"

	"github.com/tolelom/pohlog/poh"
)

// Kind labels which event variant an entry carries, so subscribers can
// register for only the kinds they care about.
type Kind string

const (
	KindTick        Kind = "tick"
	KindDiscovery   Kind = "discovery"
	KindClaim       Kind = "claim"
	KindTransaction Kind = "transaction"
)

func kindOf(ev poh.Event) Kind {
	switch ev.(type) {
	case poh.Tick:
		return KindTick
	case poh.Discovery:
		return KindDiscovery
	case poh.Claim:
		return KindClaim
	case poh.Transaction:
		return KindTransaction
	default:
		return ""
	}
}

// Handler is invoked for each entry matching a subscribed Kind.
type Handler func(poh.Entry)

// Bus is a simple pub/sub broker over committed entries. Subscribe before
// Publish; there is no replay of entries published before a subscription.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Kind][]Handler
}

// New creates a Bus with no subscribers.
func New() *Bus {
	return &Bus{handlers: make(map[Kind][]Handler)}
}

// Subscribe registers h to be called whenever an entry of kind k is
// published.
func (b *Bus) Subscribe(k Kind, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[k] = append(b.handlers[k], h)
}

// Publish delivers entry to every subscriber of its event kind,
// synchronously. Each handler is guarded by panic recovery so a
// misbehaving subscriber cannot stop the rest of the log from draining.
func (b *Bus) Publish(entry poh.Entry) {
	k := kindOf(entry.Event)
	b.mu.RLock()
	handlers := b.handlers[k]
	b.mu.RUnlock()
	for _, h := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[bus] handler panicked for %s: %v", k, r)
				}
			}()
			h(entry)
		}()
	}
}

// Pump reads from entries until the channel is closed, publishing each one,
// and closes the returned channel once draining is complete. It lets a
// caller fan a Historian's output out to subscribers on its own goroutine
// instead of blocking the historian's consumer loop.
func (b *Bus) Pump(entries <-chan poh.Entry) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			b.Publish(e)
		}
	}()
	return done
}
