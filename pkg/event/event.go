// Package event dispatches domain events to in-process listeners.
//
//	event.Listen(event.Transitioned, func(ctx context.Context, p any) { ... })
//	event.Fire(ctx, event.Transitioned, event.Transition{Entity: "order", ID: 7, To: "Approved"})
package event

import (
	"context"
	"sync"
)

// Transitioned fires after a moderation state change is stored.
const Transitioned = "moderation.transitioned"

// Transition is the payload of Transitioned.
type Transition struct {
	Entity string
	ID     uint
	Name   string
	To     string
}

// Handler receives an event payload.
type Handler func(ctx context.Context, payload any)

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers handler for the named event.
func Listen(name string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = append(handlers[name], handler)
}

// Fire calls every listener of name in registration order.
func Fire(ctx context.Context, name string, payload any) {
	mu.RLock()
	hs := make([]Handler, len(handlers[name]))
	copy(hs, handlers[name])
	mu.RUnlock()

	for _, h := range hs {
		h(ctx, payload)
	}
}

// Flush removes every listener of name.
func Flush(name string) {
	mu.Lock()
	defer mu.Unlock()
	delete(handlers, name)
}
