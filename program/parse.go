package program

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sarchlab/duet/instr"
)

// Parse failures. A *ParseError wraps exactly one of these.
var (
	ErrUnknownOpcode    = errors.New("expected instruction")
	ErrMissingOperand   = errors.New("expected operand, found end of line")
	ErrBadOperand       = errors.New("expected operand")
	ErrExpectedRegister = errors.New("expected register")
	ErrTrailingToken    = errors.New("unexpected token")
)

// ParseError reports the line and token a parse stopped at. Line is 1-based.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return fmt.Sprintf("line %d: %v, found %s", e.Line, e.Err, e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Program is an ordered sequence of instructions indexed by program counter.
type Program []instr.Inst

// Len returns the number of instructions.
func (p Program) Len() int64 {
	return int64(len(p))
}

// String serializes the program, one instruction per line.
func (p Program) String() string {
	var b strings.Builder
	for _, inst := range p {
		b.WriteString(inst.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// Parse decodes program text. Tokens are separated by ASCII whitespace and
// blank lines are skipped. Nothing is returned unless every line parses.
func Parse(text string, isa *ISA) (Program, error) {
	var prog Program

	for i, line := range strings.Split(text, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		inst, err := ParseLine(tokens, isa)
		if err != nil {
			err.Line = i + 1
			return nil, err
		}

		prog = append(prog, inst)
	}

	return prog, nil
}

// ParseLine decodes one tokenized line. The returned error has no line
// number set.
func ParseLine(tokens []string, isa *ISA) (instr.Inst, *ParseError) {
	if len(tokens) == 0 {
		return instr.Inst{}, &ParseError{Err: ErrUnknownOpcode, Token: "end of line"}
	}

	op, ok := isa.Lookup(tokens[0])
	if !ok {
		return instr.Inst{}, &ParseError{Err: ErrUnknownOpcode, Token: tokens[0]}
	}

	rest := tokens[1:]
	operands := make([]instr.Operand, 0, op.Arity())

	for _, slot := range op.Layout() {
		if len(rest) == 0 {
			return instr.Inst{}, &ParseError{Err: ErrMissingOperand}
		}

		o, err := parseOperand(rest[0], slot)
		if err != nil {
			return instr.Inst{}, err
		}

		operands = append(operands, o)
		rest = rest[1:]
	}

	if len(rest) > 0 {
		return instr.Inst{}, &ParseError{Err: ErrTrailingToken, Token: rest[0]}
	}

	return instr.Build(op, operands...), nil
}

// ParseOperand decodes a single register or literal token.
func ParseOperand(token string) (instr.Operand, error) {
	o, err := parseOperand(token, instr.SlotValue)
	if err != nil {
		return instr.Operand{}, err
	}

	return o, nil
}

func parseOperand(token string, slot instr.Slot) (instr.Operand, *ParseError) {
	if len(token) == 1 {
		if r, ok := instr.RegisterOf(token[0]); ok {
			return instr.Reg(r), nil
		}
	}

	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return instr.Operand{}, &ParseError{Err: ErrBadOperand, Token: token}
	}

	if slot == instr.SlotRegister {
		return instr.Operand{}, &ParseError{Err: ErrExpectedRegister, Token: token}
	}

	return instr.Lit(v), nil
}
