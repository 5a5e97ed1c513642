// Package legacy bridges the old positional/keyword log call convention and
// the structured event model. It adapts legacy observers so they can sit in
// a structured observer list, and re-publishes legacy-style calls as
// structured events.
package legacy

import (
	"fmt"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/observer"
)

// Event is a legacy-shaped log event: the mapping old-style consumers
// expect, with system, logLevel, message, failure, isError and why keys.
// Keys the bridge does not recognize pass through unchanged.
type Event map[string]any

// Observer is the legacy consumer contract: receive one legacy-shaped event,
// return nothing. The old convention has no error channel.
type Observer interface {
	Emit(ev Event)
}

// Func adapts a bare function to the legacy Observer contract.
type Func func(ev Event)

func (f Func) Emit(ev Event) { f(ev) }

// ObserverWrapper makes a legacy observer usable as a structured event
// observer. Each structured event is downgraded to a fresh legacy-shaped
// copy before the wrapped observer sees it; the original event is never
// touched.
type ObserverWrapper struct {
	legacy Observer
}

var _ observer.Observer = (*ObserverWrapper)(nil)

// Wrap returns an ObserverWrapper around the given legacy observer.
func Wrap(legacy Observer) *ObserverWrapper {
	return &ObserverWrapper{legacy: legacy}
}

// Observe delivers a legacy-shaped copy of e to the wrapped observer.
// Failures inside the wrapped observer are its own concern; the legacy
// contract offers no error channel, so Observe always reports success.
func (w *ObserverWrapper) Observe(e event.Event) error {
	w.legacy.Emit(Downgrade(e))
	return nil
}

func (w *ObserverWrapper) String() string {
	return fmt.Sprintf("LegacyLogObserverWrapper(%v)", w.legacy)
}

// Downgrade derives a legacy-shaped event from a structured one:
//
//   - every key of e is carried over unchanged, log_* keys included
//   - log_system, when present, is additionally exposed as system
//   - logLevel is always set, from log_level or the info default
//   - message defaults to an empty part list when absent
//   - a log_failure is exposed by reference as failure, flags isError, and
//     promotes log_format to the why label
//
// The input event is never mutated.
func Downgrade(e event.Event) Event {
	out := make(Event, len(e)+4)
	for k, v := range e {
		out[k] = v
	}

	if sys, ok := e.System(); ok {
		out["system"] = sys
	}

	out["logLevel"] = e.LevelOrDefault().Legacy()

	if _, ok := out["message"]; !ok {
		out["message"] = []any{}
	}

	if failure, ok := e.Failure(); ok {
		out["failure"] = failure
		out["isError"] = true
		if tmpl, ok := e.Format(); ok {
			out["why"] = tmpl
		}
	}

	return out
}
