package push

import "sync"

// MemoryBus is an in-process bus with the same contract as NATSBus. It backs
// tests and the stub server's in-process mode.
type MemoryBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string]map[int]func(BidEvent)
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[string]map[int]func(BidEvent))}
}

// Subscribe attaches handler to topic.
func (b *MemoryBus) Subscribe(topic string, handler func(BidEvent)) (func(), error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	if b.handlers[topic] == nil {
		b.handlers[topic] = make(map[int]func(BidEvent))
	}
	b.handlers[topic][id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.handlers[topic], id)
		b.mu.Unlock()
	}, nil
}

// Publish delivers event to every handler subscribed to topic, synchronously
// and in unspecified order.
func (b *MemoryBus) Publish(topic string, event BidEvent) error {
	b.mu.RLock()
	fns := make([]func(BidEvent), 0, len(b.handlers[topic]))
	for _, fn := range b.handlers[topic] {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn(event)
	}
	return nil
}
