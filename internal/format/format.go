// Package format renders log events to human-readable text. Structured
// events carry a {name}-placeholder template under log_format; legacy-shaped
// events are rendered the way the old call convention did, message parts
// first.
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vladamatena/twisted/internal/event"
)

var placeholder = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Event expands the event's log_format template against the event's own
// fields. Events without a template render as the empty string.
func Event(e event.Event) string {
	tmpl, ok := e.Format()
	if !ok {
		return ""
	}
	return expand(tmpl, e)
}

// Text renders a legacy-shaped event. Non-empty message parts win, joined
// with single spaces. An error event with no message renders its why label
// and failure text. Otherwise the log_format template is expanded against
// the event.
func Text(ev map[string]any) string {
	if parts, ok := ev["message"].([]any); ok && len(parts) > 0 {
		return joinParts(parts)
	}

	if isError, _ := ev["isError"].(bool); isError {
		if failure, ok := ev["failure"].(error); ok {
			why, _ := ev["why"].(string)
			if why == "" {
				why = "Unhandled Error"
			}
			return why + ": " + failure.Error()
		}
	}

	if tmpl, ok := ev["log_format"].(string); ok {
		return expand(tmpl, ev)
	}
	return ""
}

// expand substitutes {name} placeholders with the stringified value of the
// corresponding key. Placeholders naming a missing key are left verbatim.
func expand(tmpl string, fields map[string]any) string {
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		key := m[1 : len(m)-1]
		v, ok := fields[key]
		if !ok {
			return m
		}
		return fmt.Sprint(v)
	})
}

func joinParts(parts []any) string {
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprint(p)
	}
	return strings.Join(strs, " ")
}
