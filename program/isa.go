// Package program turns program text into instruction sequences.
package program

import (
	"fmt"
	"sort"

	"github.com/sarchlab/duet/instr"
)

// ISA is an instruction set: the mnemonics a parser accepts and the opcodes
// they decode to.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from mnemonic to opcode.
	nameToOpcode map[string]instr.Opcode
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:      name,
		nameToOpcode: make(map[string]instr.Opcode),
	}
}

// Name returns the name of the ISA.
func (isa *ISA) Name() string {
	return isa.isaName
}

// registerNewInst adds an opcode under its mnemonic.
func (isa *ISA) registerNewInst(op instr.Opcode) *ISA {
	isa.nameToOpcode[op.String()] = op
	return isa
}

// Lookup decodes a mnemonic.
func (isa *ISA) Lookup(mnemonic string) (instr.Opcode, bool) {
	op, ok := isa.nameToOpcode[mnemonic]
	return op, ok
}

// Supports tells if the opcode belongs to the ISA.
func (isa *ISA) Supports(op instr.Opcode) bool {
	found, ok := isa.nameToOpcode[op.String()]
	return ok && found == op
}

// Mnemonics lists the accepted mnemonics in alphabetical order.
func (isa *ISA) Mnemonics() []string {
	names := make([]string, 0, len(isa.nameToOpcode))
	for name := range isa.nameToOpcode {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// DuetISA is the sound / recover instruction set of the two-machine puzzle.
var DuetISA = NewISA("duet").
	registerNewInst(instr.Snd).
	registerNewInst(instr.Set).
	registerNewInst(instr.Add).
	registerNewInst(instr.Mul).
	registerNewInst(instr.Mod).
	registerNewInst(instr.Rcv).
	registerNewInst(instr.Jgz)

// CoprocessorISA is the reduced instruction set of the coprocessor puzzle.
var CoprocessorISA = NewISA("coprocessor").
	registerNewInst(instr.Set).
	registerNewInst(instr.Sub).
	registerNewInst(instr.Mul).
	registerNewInst(instr.Jnz)

// LookupISA finds a built-in ISA by name.
func LookupISA(name string) (*ISA, error) {
	switch name {
	case "", DuetISA.Name():
		return DuetISA, nil
	case CoprocessorISA.Name():
		return CoprocessorISA, nil
	default:
		return nil, fmt.Errorf("unknown ISA %q", name)
	}
}
