package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/duet/instr"
)

// Runtime failures.
var (
	// ErrModByZero is raised by mod with a zero divisor.
	ErrModByZero = errors.New("mod by zero")
	// ErrIllegalInstruction is raised by an opcode the emulator cannot run.
	ErrIllegalInstruction = errors.New("illegal instruction")
	// ErrStepLimit is returned when a run exceeds its instruction budget.
	ErrStepLimit = errors.New("step limit exceeded")
	// ErrNoRecovery is returned when a program terminates before any rcv
	// observes a non-zero register.
	ErrNoRecovery = errors.New("program terminated without recovering a value")
)

// ExecError describes a fault and the instruction that raised it. A machine
// that faulted cannot be resumed.
type ExecError struct {
	PC   int64      // program counter of the faulting instruction
	Inst instr.Inst // instruction that raised the fault
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%v at %d (%s)", e.Err, e.PC, e.Inst)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
