package resolve

import (
	"context"
	"path"
	"strings"
)

// StaticResolver resolves origins from a fixed map defined in config.
// Keys support wildcard patterns like "*.redis.svc".
type StaticResolver struct {
	exact     map[string]string // lowercase origin → system tag
	wildcards []wildcard
}

type wildcard struct {
	pattern string // e.g. "*.redis.svc"
	system  string
}

// NewStaticResolver builds a StaticResolver from the config map.
func NewStaticResolver(m map[string]string) *StaticResolver {
	r := &StaticResolver{
		exact: make(map[string]string, len(m)),
	}
	for origin, system := range m {
		lower := strings.ToLower(origin)
		if strings.Contains(lower, "*") {
			r.wildcards = append(r.wildcards, wildcard{pattern: lower, system: system})
		} else {
			r.exact[lower] = system
		}
	}
	return r
}

func (r *StaticResolver) Resolve(_ context.Context, origin string) (string, bool) {
	lower := strings.ToLower(origin)

	if system, ok := r.exact[lower]; ok {
		return system, true
	}

	for _, w := range r.wildcards {
		if matched, _ := path.Match(w.pattern, lower); matched {
			return w.system, true
		}
	}

	return "", false
}
