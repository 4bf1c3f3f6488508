package taskcache

import "sync"

// Bus carries cache-invalidation events. Mutations publish the key they
// dirtied; subscribed readers react. Delivery is synchronous, so by the time
// Publish returns every subscriber has observed the invalidation: a mutation
// can never report success while the cache still looks fresh.
type Bus struct {
	mu       sync.Mutex
	handlers map[string][]func(key string)
}

// NewBus creates an empty invalidation bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]func(string))}
}

// Subscribe registers fn for invalidations of key.
func (b *Bus) Subscribe(key string, fn func(key string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[key] = append(b.handlers[key], fn)
}

// Publish delivers an invalidation for key to all subscribers, in
// subscription order, before returning.
func (b *Bus) Publish(key string) {
	b.mu.Lock()
	handlers := make([]func(string), len(b.handlers[key]))
	copy(handlers, b.handlers[key])
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(key)
	}
}
