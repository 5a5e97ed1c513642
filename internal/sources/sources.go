// Package sources feeds raw log lines into the bridge. Every source speaks
// the old call convention: lines are parsed into keyword fields and message
// parts, then re-published through the legacy publisher.
package sources

import (
	"context"
	"log/slog"

	"github.com/vladamatena/twisted/internal/parse"
	"github.com/vladamatena/twisted/internal/resolve"
)

// Publisher is the legacy publisher surface sources publish through.
type Publisher interface {
	MsgWith(fields map[string]any, parts ...any) error
}

// Source is a producer of legacy log calls. Run blocks until the context is
// canceled or the underlying input is exhausted.
type Source interface {
	Run(ctx context.Context, pub Publisher) error
}

// systemTag picks the system tag for a source: an explicit tag wins,
// otherwise the origin is resolved, otherwise the fallback is used.
func systemTag(ctx context.Context, explicit string, r resolve.Resolver, origin, fallback string) string {
	if explicit != "" {
		return explicit
	}
	if r != nil {
		if system, ok := r.Resolve(ctx, origin); ok {
			return system
		}
	}
	return fallback
}

// emit publishes one raw line as a legacy log call. Blank lines are dropped.
// The line's own system field, when parsed out of the payload, wins over the
// source tag.
func emit(pub Publisher, system, line string) {
	c := parse.Line(line)
	if c.Empty() {
		return
	}
	if c.Fields == nil {
		c.Fields = make(map[string]any, 1)
	}
	if _, ok := c.Fields["system"]; !ok && system != "" {
		c.Fields["system"] = system
	}
	if err := pub.MsgWith(c.Fields, c.Parts...); err != nil {
		slog.Warn("observer failed during delivery", "error", err)
	}
}
