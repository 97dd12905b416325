package core

import (
	"fmt"

	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

// StatusKind tells why a run returned control.
type StatusKind int

const (
	// Terminated means the program counter left the program.
	Terminated StatusKind = iota
	// Suspended means the machine reached rcv and waits for a value.
	Suspended
	// Preempted means the instruction budget of the run was used up.
	Preempted
)

func (k StatusKind) String() string {
	switch k {
	case Terminated:
		return "Terminated"
	case Suspended:
		return "Suspended"
	case Preempted:
		return "Preempted"
	default:
		return fmt.Sprintf("StatusKind(%d)", int(k))
	}
}

// Status is the outcome of a run. Register is set when Kind is Suspended.
type Status struct {
	Kind     StatusKind
	Register instr.Register
}

func (s Status) String() string {
	if s.Kind == Suspended {
		return fmt.Sprintf("Suspended(%s)", s.Register)
	}

	return s.Kind.String()
}

// Machine is the execution state of one register machine. A machine is
// driven by exactly one loop and is not safe for concurrent use.
type Machine struct {
	emu instEmulator

	pc     int64
	regs   instr.Registers
	outbox []int64

	sent, received, muls int
	lastSent             int64
	steps                uint64

	fault error
}

// NewMachine creates a machine with all registers zero.
func NewMachine() *Machine {
	return &Machine{}
}

// Seed sets a register before execution starts.
func (m *Machine) Seed(r instr.Register, value int64) {
	if !r.Valid() {
		panic(fmt.Sprintf("register %d out of range", r))
	}

	m.regs[r] = value
}

// PC returns the program counter.
func (m *Machine) PC() int64 { return m.pc }

// Registers returns a copy of the register file.
func (m *Machine) Registers() instr.Registers { return m.regs }

// Register reads one register.
func (m *Machine) Register(r instr.Register) int64 { return m.regs[r] }

// Sent counts executed snd instructions.
func (m *Machine) Sent() int { return m.sent }

// Received counts values delivered to the machine.
func (m *Machine) Received() int { return m.received }

// Muls counts executed mul instructions.
func (m *Machine) Muls() int { return m.muls }

// LastSent returns the value of the most recent snd, or zero.
func (m *Machine) LastSent() int64 { return m.lastSent }

// Steps counts executed instructions.
func (m *Machine) Steps() uint64 { return m.steps }

// Fault returns the error that stopped the machine, if any.
func (m *Machine) Fault() error { return m.fault }

// Pending returns the number of sent values not taken yet.
func (m *Machine) Pending() int { return len(m.outbox) }

// TakeOutbox removes and returns the sent values in send order.
func (m *Machine) TakeOutbox() []int64 {
	out := m.outbox
	m.outbox = nil

	return out
}

// Deliver stores a received value into the register a suspended rcv asked
// for.
func (m *Machine) Deliver(r instr.Register, value int64) {
	m.regs[r] = value
	m.received++
}

// RunUntilSuspend executes until the machine suspends on rcv or terminates.
func (m *Machine) RunUntilSuspend(prog program.Program) (Status, error) {
	return m.Run(prog, 0)
}

// Run executes at most budget instructions; a budget of zero or less means
// no limit. After a Suspended status the machine resumes at the instruction
// following rcv, whether or not a value was delivered.
func (m *Machine) Run(prog program.Program, budget int) (Status, error) {
	if m.fault != nil {
		return Status{}, m.fault
	}

	for n := 0; ; n++ {
		if m.pc < 0 || m.pc >= prog.Len() {
			return Status{Kind: Terminated}, nil
		}

		if budget > 0 && n >= budget {
			return Status{Kind: Preempted}, nil
		}

		inst := prog[m.pc]
		m.steps++

		if inst.Op.IsJump() {
			if offset, taken := m.emu.Jump(inst, &m.regs); taken {
				m.pc += offset
				continue
			}
		}

		m.pc++

		if inst.Op == instr.Rcv {
			return Status{Kind: Suspended, Register: inst.Dst}, nil
		}

		if err := m.emu.RunInst(inst, m); err != nil {
			m.fault = &ExecError{PC: m.pc - 1, Inst: inst, Err: err}
			return Status{}, m.fault
		}
	}
}

func (m *Machine) send(v int64) {
	m.outbox = append(m.outbox, v)
	m.lastSent = v
	m.sent++
}
