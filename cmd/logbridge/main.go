package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/vladamatena/twisted/internal/app"
	"github.com/vladamatena/twisted/internal/config"
	"github.com/vladamatena/twisted/internal/logging"
	"github.com/vladamatena/twisted/internal/observer"
	"github.com/vladamatena/twisted/internal/tui"
)

func main() {
	configPath := flag.String("config", "bridge.yaml", "path to the YAML config")
	logLevel := flag.String("log-level", "info", "diagnostic log level: debug, info, warn, error")
	withTUI := flag.Bool("tui", false, "show bridged events in a live terminal view")
	flag.Parse()

	// A .env next to the binary may carry values the config expands.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	outputIsStdout := false
	for _, s := range cfg.Sinks {
		if s.Type == "stdout" {
			outputIsStdout = true
		}
	}
	logging.Init(outputIsStdout, logging.ParseLevel(*logLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var extra []observer.Observer
	var viewer *tui.Viewer
	if *withTUI {
		viewer = tui.NewViewer()
		extra = append(extra, viewer)
	}

	a := app.New(cfg, extra...)

	if viewer == nil {
		if err := a.Run(ctx); err != nil {
			slog.Error("bridge failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// The viewer owns the terminal; the bridge runs beside it.
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Run(ctx)
		viewer.Quit()
	}()

	if err := viewer.Run(); err != nil {
		slog.Error("viewer failed", "error", err)
	}
	stop()

	if err := <-errCh; err != nil {
		slog.Error("bridge failed", "error", err)
		os.Exit(1)
	}
}
