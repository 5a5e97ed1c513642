// Package app assembles the bridge from config: resolver, sinks, the legacy
// publisher and the sources feeding it.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/vladamatena/twisted/internal/config"
	"github.com/vladamatena/twisted/internal/legacy"
	"github.com/vladamatena/twisted/internal/observer"
	"github.com/vladamatena/twisted/internal/resolve"
	"github.com/vladamatena/twisted/internal/sinks"
	"github.com/vladamatena/twisted/internal/sources"
)

type App struct {
	cfg   *config.Config
	extra []observer.Observer
}

// New creates an App over the given config. Extra observers (a TUI viewer,
// a test capture) are appended after the configured sinks.
func New(cfg *config.Config, extra ...observer.Observer) *App {
	return &App{cfg: cfg, extra: extra}
}

// Run wires everything together and blocks until the context is canceled or
// a source fails.
func (a *App) Run(ctx context.Context) error {
	slog.Info("log bridge starting")

	resolver, err := resolve.FromConfig(a.cfg.Resolve)
	if err != nil {
		return err
	}

	observers := a.buildObservers()
	pub := legacy.NewPublisher(observers...)

	srcs, err := a.buildSources(resolver)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(srcs))
	var wg sync.WaitGroup
	for _, src := range srcs {
		wg.Add(1)
		go func(s sources.Source) {
			defer wg.Done()
			if err := s.Run(ctx, pub); err != nil && !errors.Is(err, context.Canceled) {
				select {
				case errCh <- err:
				default:
				}
				cancel()
			}
		}(src)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}

	slog.Info("log bridge stopped")

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

func (a *App) buildObservers() []observer.Observer {
	var observers []observer.Observer
	for name, sc := range a.cfg.Sinks {
		switch sc.Type {
		case "stdout":
			observers = append(observers, sinks.NewStdout(os.Stdout, sc.Pretty, sc.Legacy))
		case "slog":
			observers = append(observers, observer.NewSlog(slog.Default()))
		default:
			slog.Warn("skipping sink of unknown type", "sink", name, "type", sc.Type)
		}
	}
	return append(observers, a.extra...)
}

func (a *App) buildSources(resolver resolve.Resolver) ([]sources.Source, error) {
	var srcs []sources.Source
	for name, sc := range a.cfg.Sources {
		switch sc.Type {
		case "file":
			srcs = append(srcs, &sources.File{System: sc.System, Path: sc.Path, Resolver: resolver})
		case "stdin":
			srcs = append(srcs, &sources.Stdin{System: sc.System})
		case "docker":
			srcs = append(srcs, &sources.Docker{System: sc.System, ContainerID: sc.ContainerID, Resolver: resolver})
		default:
			return nil, fmt.Errorf("source [%s]: unknown type '%s'", name, sc.Type)
		}
	}
	return srcs, nil
}
