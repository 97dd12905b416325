package duet

import (
	"fmt"

	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

// cooperative drives both machines from the calling goroutine. inbox[i]
// holds the values sent to machine i that it has not received yet.
type cooperative struct {
	opts     options
	prog     program.Program
	machines [2]*core.Machine
	inbox    [2][]int64
	states   [2]link.State
	awaiting [2]instr.Register
}

// RunCooperative runs two copies of prog in turns on one goroutine. Each turn
// runs a machine until it blocks on an empty inbox or terminates.
func RunCooperative(prog program.Program, opts ...Option) (Result, error) {
	c := &cooperative{
		opts: newOptions(opts),
		prog: prog,
	}
	c.machines = c.opts.newMachines()

	err := c.run()

	res := Result{States: c.states}
	collect(c.machines, &res)
	res.Deadlocked = err == nil && c.deadlocked()

	core.Trace("Duet",
		"Scheduler", Cooperative.String(),
		"Behavior", "Finish",
		"Sent", res.Sent,
		"States", res.States,
		"Deadlocked", res.Deadlocked,
	)

	return res, err
}

func (c *cooperative) run() error {
	for {
		for i := range c.machines {
			if err := c.turn(i); err != nil {
				return fmt.Errorf("machine %d: %w", i, err)
			}
		}

		if c.states[0] == link.Terminated && c.states[1] == link.Terminated {
			return nil
		}

		if c.deadlocked() {
			return nil
		}
	}
}

func (c *cooperative) turn(i int) error {
	m := c.machines[i]

	switch c.states[i] {
	case link.Terminated, link.Faulted:
		return nil
	case link.Blocked:
		if !c.receive(i) {
			return nil
		}
	}

	for c.states[i] == link.Running {
		status, err := core.Advance(m, c.prog, c.opts.stepLimit)
		c.inbox[1-i] = append(c.inbox[1-i], m.TakeOutbox()...)

		if err != nil {
			c.states[i] = link.Faulted
			return err
		}

		switch status.Kind {
		case core.Terminated:
			c.states[i] = link.Terminated
		case core.Suspended:
			c.states[i] = link.AwaitingMessage
			c.awaiting[i] = status.Register

			if !c.receive(i) {
				c.states[i] = link.Blocked
				core.Trace("Duet", "Behavior", "Blocked", "Machine", i,
					"Sent", m.Sent(), "Received", m.Received())
			}
		}
	}

	return nil
}

// receive delivers the oldest value in the inbox of machine i, if any, and
// marks the machine running again.
func (c *cooperative) receive(i int) bool {
	if len(c.inbox[i]) == 0 {
		return false
	}

	v := c.inbox[i][0]
	c.inbox[i] = c.inbox[i][1:]
	c.machines[i].Deliver(c.awaiting[i], v)
	c.states[i] = link.Running

	return true
}

// deadlocked reports whether a machine waits on an empty inbox while its
// peer can never send again.
func (c *cooperative) deadlocked() bool {
	for i := range c.machines {
		peer := 1 - i

		if c.states[i] != link.Blocked || len(c.inbox[i]) > 0 {
			continue
		}

		switch c.states[peer] {
		case link.Terminated:
			return true
		case link.Blocked:
			if len(c.inbox[peer]) == 0 {
				return true
			}
		}
	}

	return false
}
