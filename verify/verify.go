// Package verify provides static checks and reports for register-machine
// programs.
//
// Lint (lint.go) looks for programs that cannot behave as intended:
//
//   - CONTROL: literal jumps that leave the program, unconditional self-loops
//   - ARITH: mod by a literal zero
//   - DATA: registers that are read but never written
//   - COMM: rcv in a program that never sends
//
// Report (report.go) renders run results, registers and lint issues as
// tables.
package verify

import "fmt"

// IssueType categorizes lint issues
type IssueType string

const (
	IssueControl IssueType = "CONTROL" // Jump that leaves the program or never advances
	IssueArith   IssueType = "ARITH"   // Arithmetic that always faults
	IssueData    IssueType = "DATA"    // Register that is read but never written
	IssueComm    IssueType = "COMM"    // Receive that no send can satisfy
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType
	PC      int64 // Index of the instruction, -1 for whole-program issues
	Message string
}

func (i Issue) String() string {
	if i.PC < 0 {
		return fmt.Sprintf("[%s] %s", i.Type, i.Message)
	}

	return fmt.Sprintf("[%s] %d: %s", i.Type, i.PC, i.Message)
}
