package sources

import (
	"context"
	"log/slog"

	"github.com/hpcloud/tail"

	"github.com/vladamatena/twisted/internal/resolve"
)

// File follows a log file and re-publishes every line through the bridge.
type File struct {
	System   string
	Path     string
	Resolver resolve.Resolver
}

func (f *File) Run(ctx context.Context, pub Publisher) error {
	t, err := tail.TailFile(f.Path, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
	})
	if err != nil {
		return err
	}

	system := systemTag(ctx, f.System, f.Resolver, f.Path, "file")
	slog.Info("file source started", "path", f.Path, "system", system)

	for {
		select {
		case <-ctx.Done():
			slog.Info("file source stopping", "path", f.Path)
			t.Stop()
			return nil
		case line, ok := <-t.Lines:
			if !ok {
				return nil
			}
			if line.Err != nil {
				slog.Warn("tail line error", "path", f.Path, "error", line.Err)
				continue
			}
			emit(pub, system, line.Text)
		}
	}
}
