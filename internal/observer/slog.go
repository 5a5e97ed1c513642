package observer

import (
	"context"
	"log/slog"

	"github.com/vladamatena/twisted/internal/event"
	"github.com/vladamatena/twisted/internal/format"
)

// Slog forwards structured events to a slog.Logger. The event severity maps
// directly onto slog levels via the legacy table; well-known keys become
// dedicated attributes and everything else is passed through as-is.
type Slog struct {
	logger *slog.Logger
}

// NewSlog creates a Slog observer. Pass slog.Default() for the process-wide
// logger.
func NewSlog(logger *slog.Logger) *Slog {
	return &Slog{logger: logger}
}

func (o *Slog) Observe(e event.Event) error {
	attrs := make([]slog.Attr, 0, len(e))
	if sys, ok := e.System(); ok {
		attrs = append(attrs, slog.String("system", sys))
	}
	if failure, ok := e.Failure(); ok {
		attrs = append(attrs, slog.Any("failure", failure))
	}
	for k, v := range e {
		switch k {
		case event.KeyFormat, event.KeyLevel, event.KeySystem, event.KeyFailure, event.KeyTime:
			continue
		}
		attrs = append(attrs, slog.Any(k, v))
	}

	o.logger.LogAttrs(context.Background(), e.LevelOrDefault().Legacy(), format.Event(e), attrs...)
	return nil
}
