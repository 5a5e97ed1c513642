// Package sinks holds structured observers that write bridged events out of
// the process.
package sinks

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/legacy"
)

// Stdout writes one JSON object per event. With Legacy set it emits the
// legacy-shaped projection instead of the structured event. Safe for
// concurrent use: sources publish from separate goroutines.
type Stdout struct {
	Pretty bool
	Legacy bool

	mu  sync.Mutex
	enc *json.Encoder
}

// NewStdout creates a Stdout sink writing to w.
func NewStdout(w io.Writer, pretty, legacyShape bool) *Stdout {
	s := &Stdout{Pretty: pretty, Legacy: legacyShape, enc: json.NewEncoder(w)}
	if pretty {
		s.enc.SetIndent("", "  ")
	}
	return s
}

func (s *Stdout) Observe(e event.Event) error {
	var payload map[string]any
	if s.Legacy {
		payload = legacy.Downgrade(e)
	} else {
		payload = e.Clone()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(encodable(payload))
}

// encodable replaces values json cannot marshal. Captured failures become
// their error text; the event itself keeps the original error value.
func encodable(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if err, ok := v.(error); ok {
			out[k] = err.Error()
			continue
		}
		out[k] = v
	}
	return out
}
