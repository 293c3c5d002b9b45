package notifier

import "sync"

// Bus routes published payloads to handlers subscribed under an event name.
// It is the in-process trigger source for validators: a form control (or a
// test) publishes its change event and every validator bound to that event
// re-validates synchronously.
type Bus struct {
	mu     sync.RWMutex
	topics map[string]*Notifier[any]
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string]*Notifier[any])}
}

// Subscribe registers a handler for the named event and returns a cancel
// function removing it.
func (b *Bus) Subscribe(event string, h func(any)) (cancel func()) {
	if h == nil {
		return func() {}
	}

	b.mu.Lock()
	topic, ok := b.topics[event]
	if !ok {
		topic = New[any]()
		b.topics[event] = topic
	}
	b.mu.Unlock()

	return topic.Subscribe(h)
}

// Publish delivers payload to every handler subscribed to event, on the
// calling goroutine. Publishing an event nobody listens to is a no-op.
func (b *Bus) Publish(event string, payload any) {
	b.mu.RLock()
	topic := b.topics[event]
	b.mu.RUnlock()

	if topic != nil {
		topic.Notify(payload)
	}
}

// Listeners returns the number of handlers subscribed to event.
func (b *Bus) Listeners(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if topic := b.topics[event]; topic != nil {
		return topic.Len()
	}
	return 0
}
