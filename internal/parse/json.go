package parse

import (
	"time"

	"github.com/vladamatena/twisted/internal/event"
)

func jsonCall(raw map[string]any) Call {
	c := Call{Fields: map[string]any{"parser": "json"}}

	if msg := stringField(raw, "message", "msg"); msg != "" {
		c.Parts = append(c.Parts, msg)
	}

	if lvl := stringField(raw, "level", "severity"); lvl != "" {
		if l, err := event.ParseLevel(lvl); err == nil {
			c.Fields["logLevel"] = l.Legacy()
		}
	}

	if sys := stringField(raw, "system", "service", "service.name"); sys != "" {
		c.Fields["system"] = sys
	}

	applyTimestamp(c.Fields, raw)

	for k, v := range raw {
		switch k {
		case "message", "msg", "level", "severity", "system", "service", "service.name",
			"ts", "time", "@timestamp":
			continue
		}
		c.Fields[k] = v
	}
	return c
}

func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

var timestampLayouts = []string{time.RFC3339Nano, time.RFC3339}

// applyTimestamp stamps log_time from the line's own timestamp field when it
// carries one, so the publisher does not overwrite it with time.Now.
func applyTimestamp(fields map[string]any, raw map[string]any) {
	for _, key := range []string{"ts", "time", "@timestamp"} {
		s, ok := raw[key].(string)
		if !ok {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				fields[event.KeyTime] = t
				return
			}
		}
	}
}
