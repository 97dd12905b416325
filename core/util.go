package core

import (
	"context"
	"log/slog"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1
)

// Trace logs a machine event at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// LogState dumps the machine state at debug level.
func LogState(m *Machine) {
	slog.Debug("StateCheckpoint",
		"PC", m.pc,
		"Registers", m.regs[:],
		"Sent", m.sent,
		"Received", m.received,
		"Muls", m.muls,
		"Pending", len(m.outbox),
		"Steps", m.steps,
	)
}
