package core

import (
	"github.com/sarchlab/duet/instr"
)

type instEmulator struct {
}

// RunInst applies the effect of a non-jump instruction. The program counter
// has already been advanced. rcv never reaches here; the machine suspends on
// it instead.
func (i instEmulator) RunInst(inst instr.Inst, m *Machine) error {
	switch inst.Op {
	case instr.Snd:
		i.runSnd(inst, m)
	case instr.Set:
		i.runSet(inst, m)
	case instr.Add:
		i.runAdd(inst, m)
	case instr.Sub:
		i.runSub(inst, m)
	case instr.Mul:
		i.runMul(inst, m)
	case instr.Mod:
		return i.runMod(inst, m)
	case instr.Jgz, instr.Jnz:
		// jump not taken
	default:
		return ErrIllegalInstruction
	}

	return nil
}

// Jump evaluates a jump condition. The offset is only meaningful when the
// jump is taken.
func (i instEmulator) Jump(inst instr.Inst, regs *instr.Registers) (int64, bool) {
	cond := inst.Src[0].Value(regs)

	switch inst.Op {
	case instr.Jgz:
		if cond > 0 {
			return inst.Src[1].Value(regs), true
		}
	case instr.Jnz:
		if cond != 0 {
			return inst.Src[1].Value(regs), true
		}
	}

	return 0, false
}

func (i instEmulator) readOperand(o instr.Operand, m *Machine) int64 {
	return o.Value(&m.regs)
}

func (i instEmulator) writeOperand(r instr.Register, value int64, m *Machine) {
	m.regs[r] = value
}

func (i instEmulator) runSnd(inst instr.Inst, m *Machine) {
	m.send(i.readOperand(inst.Src[0], m))
}

func (i instEmulator) runSet(inst instr.Inst, m *Machine) {
	i.writeOperand(inst.Dst, i.readOperand(inst.Src[0], m), m)
}

// Arithmetic wraps on overflow.
func (i instEmulator) runAdd(inst instr.Inst, m *Machine) {
	i.writeOperand(inst.Dst, m.regs[inst.Dst]+i.readOperand(inst.Src[0], m), m)
}

func (i instEmulator) runSub(inst instr.Inst, m *Machine) {
	i.writeOperand(inst.Dst, m.regs[inst.Dst]-i.readOperand(inst.Src[0], m), m)
}

func (i instEmulator) runMul(inst instr.Inst, m *Machine) {
	i.writeOperand(inst.Dst, m.regs[inst.Dst]*i.readOperand(inst.Src[0], m), m)
	m.muls++
}

// The result takes the sign of the dividend.
func (i instEmulator) runMod(inst instr.Inst, m *Machine) error {
	divisor := i.readOperand(inst.Src[0], m)
	if divisor == 0 {
		return ErrModByZero
	}

	i.writeOperand(inst.Dst, m.regs[inst.Dst]%divisor, m)

	return nil
}
