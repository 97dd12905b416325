package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/sarchlab/duet/config"
)

// setupLogging installs the default logger: text on w and, when a trace file
// is configured, JSON records in that file. The returned func closes the
// trace file and restores the previous default logger.
func setupLogging(w io.Writer, cfg config.RunConfig) (func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}

	var file *os.File
	if cfg.TraceFile != "" {
		file, err = os.Create(cfg.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace file: %w", err)
		}

		handlers = append(handlers, slog.NewJSONHandler(file, opts))
	}

	previous := slog.Default()
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return func() {
		slog.SetDefault(previous)

		if file != nil {
			file.Close()
		}
	}, nil
}
