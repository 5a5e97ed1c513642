// Package parse reconstructs legacy log calls from raw log lines. A line
// becomes the keyword fields and positional message parts of one old-style
// publisher call; structured (JSON/ECS) lines contribute fields, plain lines
// become a single message part.
package parse

import (
	"encoding/json"
	"strings"
)

// Call holds the arguments of one reconstructed legacy log call.
type Call struct {
	Fields map[string]any
	Parts  []any
}

// Empty reports whether the line produced nothing worth publishing.
func (c Call) Empty() bool {
	return len(c.Fields) == 0 && len(c.Parts) == 0
}

// Line parses one raw log line into a legacy call.
func Line(line string) Call {
	s := strings.TrimSpace(line)
	if s == "" {
		return Call{}
	}

	var raw map[string]any
	if !tryUnmarshalJSON(s, &raw) {
		return plainCall(s)
	}

	if isECS(raw) {
		return ecsCall(raw)
	}
	return jsonCall(raw)
}

func tryUnmarshalJSON(s string, raw *map[string]any) bool {
	if s[0] != '{' {
		return false
	}
	return json.Unmarshal([]byte(s), raw) == nil
}

func plainCall(s string) Call {
	return Call{
		Fields: map[string]any{"parser": "plain"},
		Parts:  []any{s},
	}
}
