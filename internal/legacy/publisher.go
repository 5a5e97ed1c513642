package legacy

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/observer"
)

// Publisher accepts old-style log calls and forwards them as structured
// events. The observer list is fixed at construction; every call is
// stateless beyond it.
type Publisher struct {
	observers []observer.Observer
	now       func() time.Time
}

// NewPublisher creates a Publisher forwarding to the given structured
// observers in registration order. Nil observers are filtered out.
func NewPublisher(observers ...observer.Observer) *Publisher {
	p := &Publisher{now: time.Now}
	for _, o := range observers {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
	return p
}

// Msg publishes a legacy log call carrying only positional message parts.
func (p *Publisher) Msg(parts ...any) error {
	return p.MsgWith(nil, parts...)
}

// MsgWith publishes a legacy log call: free positional message parts plus
// arbitrary keyword fields. The fields are copied into a fresh structured
// event; the legacy isError and logLevel fields decide the canonical
// severity (a truthy isError wins and means critical, an explicit logLevel
// is reverse-mapped to the nearest severity, otherwise info). Message parts
// are joined with spaces into the event's template, with no named
// substitutions.
//
// Delivery is isolated per observer: one observer failing does not stop the
// forwarding pass. Failures are joined into the returned error.
func (p *Publisher) MsgWith(fields map[string]any, parts ...any) error {
	e := make(event.Event, len(fields)+3)
	for k, v := range fields {
		e[k] = v
	}

	switch {
	case truthy(fields["isError"]):
		e[event.KeyLevel] = event.LevelCritical
	case fields["logLevel"] != nil:
		if v, ok := legacyLevelValue(fields["logLevel"]); ok {
			e[event.KeyLevel] = event.LevelFromLegacy(v)
		} else {
			e[event.KeyLevel] = event.LevelInfo
		}
	default:
		e[event.KeyLevel] = event.LevelInfo
	}

	if sys, ok := fields["system"].(string); ok && sys != "" {
		if _, taken := e[event.KeySystem]; !taken {
			e[event.KeySystem] = sys
		}
	}

	if len(parts) > 0 {
		e[event.KeyFormat] = joinParts(parts)
	}

	if _, ok := e[event.KeyTime]; !ok {
		e[event.KeyTime] = p.now()
	}

	return p.forward(e)
}

func (p *Publisher) forward(e event.Event) error {
	var errs []error
	for _, o := range p.observers {
		if err := o.Observe(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func joinParts(parts []any) string {
	strs := make([]string, len(parts))
	for i, part := range parts {
		strs[i] = fmt.Sprint(part)
	}
	return strings.Join(strs, " ")
}

// truthy interprets a legacy flag value the way the old convention did:
// absent, false, zero and empty all read as false.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case string:
		return t != ""
	}
	return true
}

// legacyLevelValue coerces the assorted numeric spellings of a legacy
// logLevel field to a slog.Level.
func legacyLevelValue(v any) (slog.Level, bool) {
	switch t := v.(type) {
	case slog.Level:
		return t, true
	case int:
		return slog.Level(t), true
	case int64:
		return slog.Level(t), true
	case float64:
		return slog.Level(t), true
	}
	return 0, false
}
