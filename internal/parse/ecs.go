package parse

import (
	"github.com/vladamatena/twisted/internal/event"
)

// isECS detects Elastic Common Schema shaped lines.
func isECS(raw map[string]any) bool {
	if _, ok := raw["ecs.version"]; ok {
		return true
	}
	if _, ok := raw["log.level"]; ok {
		return true
	}
	if logObj, ok := raw["log"].(map[string]any); ok {
		if _, ok := logObj["level"]; ok {
			return true
		}
	}
	return false
}

func ecsCall(raw map[string]any) Call {
	c := Call{Fields: map[string]any{"parser": "ecs"}}

	if msg := stringField(raw, "message", "msg"); msg != "" {
		c.Parts = append(c.Parts, msg)
	}

	if lvl := ecsLevel(raw); lvl != "" {
		if l, err := event.ParseLevel(lvl); err == nil {
			c.Fields["logLevel"] = l.Legacy()
		}
	}

	if svc := ecsService(raw); svc != "" {
		c.Fields["system"] = svc
	}

	applyTimestamp(c.Fields, raw)

	for k, v := range raw {
		switch k {
		case "message", "msg", "log.level", "log", "service", "ecs.version",
			"ts", "time", "@timestamp":
			continue
		}
		c.Fields[k] = v
	}
	return c
}

func ecsLevel(raw map[string]any) string {
	if lvl, ok := raw["log.level"].(string); ok && lvl != "" {
		return lvl
	}
	if logObj, ok := raw["log"].(map[string]any); ok {
		if lvl, ok := logObj["level"].(string); ok {
			return lvl
		}
	}
	return ""
}

func ecsService(raw map[string]any) string {
	if svcObj, ok := raw["service"].(map[string]any); ok {
		if name, ok := svcObj["name"].(string); ok && name != "" {
			return name
		}
	}
	return ""
}
