// Package notifier provides synchronous, type-safe listener registries.
//
// Notifier fans a value out to every registered handler on the caller's
// goroutine, in registration order. It is the "has-a" replacement for an
// event-dispatcher base class: owners embed or hold a Notifier and delegate
// emission to it instead of inheriting dispatch behavior.
//
// Bus groups independent Notifier instances under string event names and is
// the in-process trigger source for validators: subscribe a handler to a
// named event, publish the event, and every handler runs before Publish
// returns.
//
// Basic usage:
//
//	n := notifier.New[string]()
//	cancel := n.Subscribe(func(s string) { fmt.Println(s) })
//	defer cancel()
//	n.Notify("hello")
//
// Handlers run synchronously; a handler that panics propagates to the
// caller of Notify. Both types are safe for concurrent use.
package notifier
