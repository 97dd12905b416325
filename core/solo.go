package core

import (
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

// RunOption configures a standalone run.
type RunOption func(*runConfig)

type runConfig struct {
	stepLimit uint64
}

// WithStepLimit aborts a run with ErrStepLimit once the machine needs more
// than n instructions. Zero disables the limit.
func WithStepLimit(n uint64) RunOption {
	return func(c *runConfig) {
		c.stepLimit = n
	}
}

func newRunConfig(opts []RunOption) runConfig {
	c := runConfig{}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// Advance runs m until it suspends or terminates while honoring a step
// limit counted over the whole life of the machine.
func Advance(m *Machine, prog program.Program, stepLimit uint64) (Status, error) {
	if stepLimit == 0 {
		return m.RunUntilSuspend(prog)
	}

	for {
		if err := m.Fault(); err != nil {
			return Status{}, err
		}

		if m.PC() < 0 || m.PC() >= prog.Len() {
			return Status{Kind: Terminated}, nil
		}

		if m.Steps() >= stepLimit {
			return Status{}, ErrStepLimit
		}

		status, err := m.Run(prog, int(min(stepLimit-m.Steps(), 1<<20)))
		if err != nil || status.Kind != Preempted {
			return status, err
		}
	}
}

// RecoverFrequency runs a single machine until a rcv finds a non-zero value
// in its register and returns the most recently sent value at that moment. A
// rcv on a zero register does nothing.
func RecoverFrequency(prog program.Program, opts ...RunOption) (int64, error) {
	cfg := newRunConfig(opts)
	m := NewMachine()

	for {
		status, err := Advance(m, prog, cfg.stepLimit)
		if err != nil {
			return 0, err
		}

		switch status.Kind {
		case Terminated:
			Trace("Solo", "Behavior", "Terminated", "PC", m.PC(), "Sent", m.Sent())
			return 0, ErrNoRecovery
		case Suspended:
			if m.Register(status.Register) != 0 {
				Trace("Solo",
					"Behavior", "Recover",
					"PC", m.PC()-1,
					"Register", status.Register.String(),
					"Value", m.LastSent(),
				)
				return m.LastSent(), nil
			}
		}
	}
}

// Stats summarizes a run that went to termination.
type Stats struct {
	Steps     uint64
	Muls      int
	Sent      int
	Registers instr.Registers
}

// CountMultiplies runs a coprocessor program to termination and reports how
// many mul instructions executed. rcv resumes immediately without a value.
func CountMultiplies(prog program.Program, opts ...RunOption) (Stats, error) {
	cfg := newRunConfig(opts)
	m := NewMachine()

	for {
		status, err := Advance(m, prog, cfg.stepLimit)
		if err != nil {
			return Stats{}, err
		}

		if status.Kind == Terminated {
			LogState(m)
			return Stats{
				Steps:     m.Steps(),
				Muls:      m.Muls(),
				Sent:      m.Sent(),
				Registers: m.Registers(),
			}, nil
		}
	}
}
