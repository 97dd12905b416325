// Package duet runs two copies of a program that exchange values and stop
// when both terminate or neither can make progress.
package duet

import (
	"fmt"

	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/link"
)

// Result is the outcome of a pair run. Index i describes the machine with
// identity i.
type Result struct {
	Sent       [2]int
	Received   [2]int
	States     [2]link.State
	Registers  [2]instr.Registers
	Deadlocked bool
}

// Answer is the number of values machine 1 sent.
func (r Result) Answer() int {
	return r.Sent[1]
}

func (r Result) String() string {
	return fmt.Sprintf("sent=%v received=%v states=%v deadlocked=%t",
		r.Sent, r.Received, r.States, r.Deadlocked)
}

// Scheduler selects how the two machines are driven.
type Scheduler int

const (
	// Cooperative drives both machines from one goroutine in turns.
	Cooperative Scheduler = iota
	// Concurrent gives each machine its own goroutine.
	Concurrent
	// Simulated runs the machines as cores of a discrete-event simulation.
	Simulated
)

var schedulerNames = map[Scheduler]string{
	Cooperative: "cooperative",
	Concurrent:  "concurrent",
	Simulated:   "sim",
}

func (s Scheduler) String() string {
	if name, ok := schedulerNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Scheduler(%d)", int(s))
}

// ParseScheduler maps a scheduler name to its value. The empty string
// selects Cooperative.
func ParseScheduler(name string) (Scheduler, error) {
	if name == "" {
		return Cooperative, nil
	}

	for s, n := range schedulerNames {
		if n == name {
			return s, nil
		}
	}

	return 0, fmt.Errorf("unknown scheduler %q", name)
}
