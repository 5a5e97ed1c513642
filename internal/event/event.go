// Package event defines the structured log event shape shared by the
// bridge: an open key/value mapping with a handful of well-known keys
// pulled out as typed accessors. Unknown keys always pass through.
package event

import "time"

// Well-known structured event keys.
const (
	KeyFormat  = "log_format"
	KeyLevel   = "log_level"
	KeySystem  = "log_system"
	KeyFailure = "log_failure"
	KeyTime    = "log_time"
)

// Event is a structured log event: an open mapping from string keys to
// arbitrary values. Components never mutate an Event they receive; every
// transformation works on a Clone.
type Event map[string]any

// Clone returns a shallow copy of the event. Values are shared with the
// original; only the top-level mapping is copied.
func (e Event) Clone() Event {
	out := make(Event, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Level returns the canonical severity stored under KeyLevel.
func (e Event) Level() (Level, bool) {
	switch v := e[KeyLevel].(type) {
	case Level:
		return v, true
	case string:
		if l, err := ParseLevel(v); err == nil {
			return l, true
		}
	}
	return 0, false
}

// LevelOrDefault returns the event's severity, or LevelInfo when absent.
func (e Event) LevelOrDefault() Level {
	if l, ok := e.Level(); ok {
		return l
	}
	return LevelInfo
}

// System returns the free-text subsystem tag stored under KeySystem.
func (e Event) System() (string, bool) {
	s, ok := e[KeySystem].(string)
	return s, ok && s != ""
}

// Format returns the message template stored under KeyFormat.
func (e Event) Format() (string, bool) {
	s, ok := e[KeyFormat].(string)
	return s, ok
}

// Failure returns the captured error stored under KeyFailure. The value is
// passed through the bridge by reference and never copied.
func (e Event) Failure() (error, bool) {
	err, ok := e[KeyFailure].(error)
	return err, ok
}

// Time returns the event timestamp stored under KeyTime.
func (e Event) Time() (time.Time, bool) {
	t, ok := e[KeyTime].(time.Time)
	return t, ok
}
