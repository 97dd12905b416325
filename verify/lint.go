package verify

import (
	"fmt"

	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

// LintOption configures Lint.
type LintOption func(*lintConfig)

type lintConfig struct {
	identity instr.Register
}

// WithIdentityRegister names the register that is seeded before the run and
// therefore counts as written.
func WithIdentityRegister(r instr.Register) LintOption {
	return func(c *lintConfig) {
		c.identity = r
	}
}

// Lint performs static checks on a program. Returns a list of issues found
// in program order, or an empty list if no issues.
func Lint(prog program.Program, opts ...LintOption) []Issue {
	cfg := lintConfig{identity: core.DefaultIdentityRegister}
	for _, opt := range opts {
		opt(&cfg)
	}

	var issues []Issue

	for pc, inst := range prog {
		issues = append(issues, lintJump(prog, int64(pc), inst)...)

		if inst.Op == instr.Mod && !inst.Src[0].IsRegister() &&
			inst.Src[0].Literal() == 0 {
			issues = append(issues, Issue{
				Type:    IssueArith,
				PC:      int64(pc),
				Message: fmt.Sprintf("%s always divides by zero", inst),
			})
		}
	}

	issues = append(issues, lintRegisters(prog, cfg.identity)...)
	issues = append(issues, lintComm(prog)...)

	return issues
}

func lintJump(prog program.Program, pc int64, inst instr.Inst) []Issue {
	if !inst.Op.IsJump() {
		return nil
	}

	cond, offset := inst.Src[0], inst.Src[1]
	if offset.IsRegister() {
		return nil
	}

	var issues []Issue

	target := pc + offset.Literal()
	if target < 0 || target > prog.Len() {
		issues = append(issues, Issue{
			Type:    IssueControl,
			PC:      pc,
			Message: fmt.Sprintf("%s jumps to %d, outside 0..%d", inst, target, prog.Len()),
		})
	}

	if offset.Literal() == 0 && alwaysTaken(inst.Op, cond) {
		issues = append(issues, Issue{
			Type:    IssueControl,
			PC:      pc,
			Message: fmt.Sprintf("%s loops on itself forever", inst),
		})
	}

	return issues
}

func alwaysTaken(op instr.Opcode, cond instr.Operand) bool {
	if cond.IsRegister() {
		return false
	}

	switch op {
	case instr.Jgz:
		return cond.Literal() > 0
	case instr.Jnz:
		return cond.Literal() != 0
	}

	return false
}

// writesDst tells if the opcode stores into its register operand and if it
// reads the old value first.
func writesDst(op instr.Opcode) (writes, reads bool) {
	switch op {
	case instr.Set, instr.Rcv:
		return true, false
	case instr.Add, instr.Sub, instr.Mul, instr.Mod:
		return true, true
	}

	return false, false
}

func lintRegisters(prog program.Program, identity instr.Register) []Issue {
	var written [instr.NumRegisters]bool
	firstRead := make(map[instr.Register]int64)

	written[identity] = true

	read := func(r instr.Register, pc int64) {
		if _, ok := firstRead[r]; !ok {
			firstRead[r] = pc
		}
	}

	for pc, inst := range prog {
		writes, reads := writesDst(inst.Op)
		if writes {
			written[inst.Dst] = true
		}

		if reads {
			read(inst.Dst, int64(pc))
		}

		for _, o := range inst.Src {
			if o.IsRegister() {
				read(o.Register(), int64(pc))
			}
		}
	}

	var issues []Issue
	for r := instr.Register(0); r < instr.NumRegisters; r++ {
		pc, ok := firstRead[r]
		if !ok || written[r] {
			continue
		}

		issues = append(issues, Issue{
			Type:    IssueData,
			PC:      pc,
			Message: fmt.Sprintf("register %s is read but never written, it is always 0", r),
		})
	}

	return issues
}

func lintComm(prog program.Program) []Issue {
	firstRcv := int64(-1)
	sends := false

	for pc, inst := range prog {
		switch inst.Op {
		case instr.Snd:
			sends = true
		case instr.Rcv:
			if firstRcv < 0 {
				firstRcv = int64(pc)
			}
		}
	}

	if sends || firstRcv < 0 {
		return nil
	}

	return []Issue{{
		Type:    IssueComm,
		PC:      firstRcv,
		Message: "rcv in a program that never sends, the peer cannot deliver",
	}}
}
