package instr

import "strconv"

// NumRegisters is the size of a machine's register file.
const NumRegisters = 26

// Register identifies one of the 26 integer registers, a through z.
type Register uint8

// RegisterOf maps a lowercase letter to its register. The second result is
// false for anything outside a-z.
func RegisterOf(letter byte) (Register, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}

	return Register(letter - 'a'), true
}

// String returns the register letter.
func (r Register) String() string {
	return string(rune('a' + r))
}

// Valid checks that the register fits in the register file.
func (r Register) Valid() bool {
	return r < NumRegisters
}

// Registers is a complete register file.
type Registers [NumRegisters]int64

// Operand is either a register reference or a literal value.
type Operand struct {
	reg     Register
	literal int64
	isReg   bool
}

// Reg makes an operand that reads a register.
func Reg(r Register) Operand {
	return Operand{reg: r, isReg: true}
}

// Lit makes an operand holding a constant.
func Lit(v int64) Operand {
	return Operand{literal: v}
}

// IsRegister tells if the operand reads a register.
func (o Operand) IsRegister() bool {
	return o.isReg
}

// Register returns the register the operand reads. Only meaningful when
// IsRegister is true.
func (o Operand) Register() Register {
	return o.reg
}

// Literal returns the constant of a literal operand.
func (o Operand) Literal() int64 {
	return o.literal
}

// Value evaluates the operand against a register file.
func (o Operand) Value(regs *Registers) int64 {
	if o.isReg {
		return regs[o.reg]
	}

	return o.literal
}

func (o Operand) String() string {
	if o.isReg {
		return o.reg.String()
	}

	return strconv.FormatInt(o.literal, 10)
}
