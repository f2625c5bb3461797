// Package bus implements the in-process change-notification bus.
// Events carry no payload: a notification is advisory, and every
// subscriber re-reads authoritative state from storage instead of
// trusting event contents.
package bus

import "sync"

// Topic names a notification channel.
type Topic string

const (
	// ActivityChanged fires after any daily record write.
	ActivityChanged Topic = "activity_changed"
	// ProfileChanged fires after a successful recomputation.
	ProfileChanged Topic = "profile_changed"
)

// Bus is a synchronous publish/subscribe fan-out. Handlers run on the
// publisher's goroutine, in subscription order, each to completion.
type Bus struct {
	mu   sync.Mutex
	subs map[Topic][]func()
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic][]func())}
}

// Subscribe registers a handler for a topic. Handlers cannot be removed;
// subscribers live as long as the process.
func (b *Bus) Subscribe(topic Topic, fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish invokes every handler for the topic, synchronously.
func (b *Bus) Publish(topic Topic) {
	b.mu.Lock()
	handlers := make([]func(), len(b.subs[topic]))
	copy(handlers, b.subs[topic])
	b.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
