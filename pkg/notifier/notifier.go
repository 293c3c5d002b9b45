package notifier

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Handler receives values emitted through a Notifier.
type Handler[T any] func(T)

type subscription[T any] struct {
	id      string
	handler Handler[T]
}

// Notifier fans values out to registered handlers synchronously and in
// registration order. The zero value is not usable; construct with New.
type Notifier[T any] struct {
	mu   sync.RWMutex
	subs []subscription[T]
}

// New creates an empty Notifier.
func New[T any]() *Notifier[T] {
	return &Notifier[T]{}
}

// Subscribe registers a handler and returns a cancel function that removes
// it. Cancel is idempotent. A nil handler is ignored and its cancel is a
// no-op.
func (n *Notifier[T]) Subscribe(h Handler[T]) (cancel func()) {
	if h == nil {
		return func() {}
	}

	id := uuid.NewString()

	n.mu.Lock()
	n.subs = append(n.subs, subscription[T]{id: id, handler: h})
	n.mu.Unlock()

	return func() { n.unsubscribe(id) }
}

// Notify delivers v to every registered handler on the calling goroutine.
func (n *Notifier[T]) Notify(v T) {
	n.mu.RLock()
	// Snapshot so a handler may subscribe or cancel without deadlocking.
	subs := slices.Clone(n.subs)
	n.mu.RUnlock()

	for _, s := range subs {
		s.handler(v)
	}
}

// Len returns the number of registered handlers.
func (n *Notifier[T]) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

func (n *Notifier[T]) unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.subs = slices.DeleteFunc(n.subs, func(s subscription[T]) bool {
		return s.id == id
	})
}
