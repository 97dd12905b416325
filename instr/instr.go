// Package instr defines the operands and instructions of the register
// machine.
package instr

import (
	"fmt"
	"strings"
)

// Opcode names an operation.
type Opcode int

// The duet dialect uses Snd through Jgz. The coprocessor dialect reuses Set
// and Mul and adds Sub and Jnz.
const (
	Snd Opcode = iota
	Set
	Add
	Mul
	Mod
	Rcv
	Jgz
	Sub
	Jnz
	numOpcodes
)

var mnemonics = [numOpcodes]string{
	Snd: "snd",
	Set: "set",
	Add: "add",
	Mul: "mul",
	Mod: "mod",
	Rcv: "rcv",
	Jgz: "jgz",
	Sub: "sub",
	Jnz: "jnz",
}

// Slot is the kind of a single operand position.
type Slot int

const (
	// SlotValue accepts a register or a literal.
	SlotValue Slot = iota
	// SlotRegister accepts a register only.
	SlotRegister
)

var layouts = [numOpcodes][]Slot{
	Snd: {SlotValue},
	Set: {SlotRegister, SlotValue},
	Add: {SlotRegister, SlotValue},
	Mul: {SlotRegister, SlotValue},
	Mod: {SlotRegister, SlotValue},
	Rcv: {SlotRegister},
	Jgz: {SlotValue, SlotValue},
	Sub: {SlotRegister, SlotValue},
	Jnz: {SlotValue, SlotValue},
}

// String returns the mnemonic.
func (op Opcode) String() string {
	if op < 0 || op >= numOpcodes {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}

	return mnemonics[op]
}

// Layout lists the operand slots of the opcode in source order.
func (op Opcode) Layout() []Slot {
	return layouts[op]
}

// Arity is the number of operands the opcode takes.
func (op Opcode) Arity() int {
	return len(layouts[op])
}

// IsJump tells if the opcode modifies the program counter itself.
func (op Opcode) IsJump() bool {
	return op == Jgz || op == Jnz
}

// Opcodes lists every opcode known to the machine.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, numOpcodes)
	for op := Opcode(0); op < numOpcodes; op++ {
		ops = append(ops, op)
	}

	return ops
}

// Inst is a decoded instruction. Instructions that write a register carry it
// in Dst; the remaining operands are in Src.
//
//	snd X      Src[0] = X
//	set r Y    Dst = r, Src[0] = Y
//	rcv r      Dst = r
//	jgz X Y    Src[0] = X, Src[1] = Y
type Inst struct {
	Op  Opcode
	Dst Register
	Src []Operand
}

// Build assembles an instruction from operands given in source order. It
// panics if the operands do not match the opcode layout; the parser checks
// the layout before calling it.
func Build(op Opcode, operands ...Operand) Inst {
	layout := op.Layout()
	if len(operands) != len(layout) {
		panic(fmt.Sprintf("%s takes %d operands, got %d",
			op, len(layout), len(operands)))
	}

	inst := Inst{Op: op}
	for i, slot := range layout {
		if slot == SlotRegister {
			if !operands[i].IsRegister() {
				panic(fmt.Sprintf("operand %d of %s must be a register", i, op))
			}

			inst.Dst = operands[i].Register()

			continue
		}

		inst.Src = append(inst.Src, operands[i])
	}

	return inst
}

// Operands returns the operands in source order.
func (i Inst) Operands() []Operand {
	out := make([]Operand, 0, i.Op.Arity())
	src := 0

	for _, slot := range i.Op.Layout() {
		if slot == SlotRegister {
			out = append(out, Reg(i.Dst))
			continue
		}

		out = append(out, i.Src[src])
		src++
	}

	return out
}

// String serializes the instruction in program text form.
func (i Inst) String() string {
	var b strings.Builder

	b.WriteString(i.Op.String())
	for _, o := range i.Operands() {
		b.WriteByte(' ')
		b.WriteString(o.String())
	}

	return b.String()
}
