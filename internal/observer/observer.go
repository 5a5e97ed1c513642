// Package observer defines the structured event observer contract and a
// sequential fan-out over a fixed observer list.
package observer

import (
	"errors"

	"github.com/vladamatena/twisted/internal/event"
)

// Observer receives one structured event per call. Implementations must not
// mutate the event they receive; anything derived from it has to be built on
// a copy.
type Observer interface {
	Observe(e event.Event) error
}

// Func adapts a bare function to the Observer interface.
type Func func(e event.Event) error

func (f Func) Observe(e event.Event) error { return f(e) }

// Multi fans an event out to every wrapped observer in registration order.
// The list is fixed at construction; nil observers are filtered out.
type Multi struct {
	observers []Observer
}

// NewMulti creates a Multi over the given observers.
func NewMulti(observers ...Observer) *Multi {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return &Multi{observers: filtered}
}

// Observe delivers the event to every wrapped observer. A failing observer
// does not prevent delivery to the rest; errors are collected and joined.
func (m *Multi) Observe(e event.Event) error {
	var errs []error
	for _, o := range m.observers {
		if err := o.Observe(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
