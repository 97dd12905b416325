package core

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

// Core runs one machine as a simulated component. It exchanges values with
// its peer through a single port.
type Core struct {
	*sim.TickingComponent

	port   sim.Port
	remote sim.RemotePort

	identityRegister instr.Register
	instsPerTick     int
	stepLimit        uint64

	prog     program.Program
	machine  *Machine
	state    link.State
	awaiting instr.Register
	pending  []int64
}

// GetPort returns the port the core sends and receives on.
func (c *Core) GetPort() sim.Port {
	return c.port
}

// SetRemotePort sets where sent values go.
func (c *Core) SetRemotePort(remote sim.RemotePort) {
	c.remote = remote
}

// MapProgram sets the program that the core needs to run and seeds the
// identity register.
func (c *Core) MapProgram(prog program.Program, identity int64) {
	c.prog = prog
	c.machine = NewMachine()
	c.machine.Seed(c.identityRegister, identity)
	c.state = link.Running
	c.pending = nil

	Trace("Core",
		"Behavior", "MapProgram",
		"Name", c.Name(),
		"Length", len(prog),
		"Identity", identity,
	)
}

// Kick schedules the first tick.
func (c *Core) Kick() {
	c.TickNow()
}

// State returns the scheduling state.
func (c *Core) State() link.State {
	return c.state
}

// Stats reports the machine counters.
func (c *Core) Stats() link.TileStats {
	if c.machine == nil {
		return link.TileStats{State: c.state}
	}

	return link.TileStats{
		State:     c.state,
		Sent:      c.machine.Sent(),
		Received:  c.machine.Received(),
		Steps:     c.machine.Steps(),
		Registers: c.machine.Registers(),
		Err:       c.machine.Fault(),
	}
}

// HasPendingInput tells if a value waits in the incoming buffer.
func (c *Core) HasPendingInput() bool {
	return c.port.PeekIncoming() != nil
}

// Tick runs the core for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.machine == nil {
		return false
	}

	madeProgress = c.doSend() || madeProgress
	madeProgress = c.runProgram() || madeProgress
	madeProgress = c.doRecv() || madeProgress

	return madeProgress
}

func (c *Core) doSend() bool {
	madeProgress := false

	for len(c.pending) > 0 {
		msg := link.ValueMsgBuilder{}.
			WithSrc(c.port.AsRemote()).
			WithDst(c.remote).
			WithValue(c.pending[0]).
			Build()

		err := c.port.Send(msg)
		if err != nil {
			Trace("Backpressure",
				"Name", c.Name(),
				"Time", float64(c.Engine.CurrentTime()*1e9),
				"Value", c.pending[0],
			)
			break
		}

		Trace("DataFlow",
			"Behavior", "Send",
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Value", c.pending[0],
			"From", msg.Src,
			"To", msg.Dst,
		)

		c.pending = c.pending[1:]
		madeProgress = true
	}

	return madeProgress
}

func (c *Core) runProgram() bool {
	if c.state != link.Running {
		return false
	}

	budget := c.instsPerTick
	if c.stepLimit > 0 && c.inProgram() {
		if c.machine.Steps() >= c.stepLimit {
			c.fault(ErrStepLimit)
			return true
		}

		budget = int(min(uint64(budget), c.stepLimit-c.machine.Steps()))
	}

	status, err := c.machine.Run(c.prog, budget)
	c.pending = append(c.pending, c.machine.TakeOutbox()...)

	if err != nil {
		c.fault(err)
		return true
	}

	switch status.Kind {
	case Terminated:
		c.state = link.Terminated
		Trace("Core",
			"Behavior", "Terminated",
			"Name", c.Name(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
			"Sent", c.machine.Sent(),
		)
	case Suspended:
		c.state = link.AwaitingMessage
		c.awaiting = status.Register
	}

	return true
}

func (c *Core) inProgram() bool {
	pc := c.machine.PC()
	return pc >= 0 && pc < c.prog.Len()
}

func (c *Core) doRecv() bool {
	if c.state != link.AwaitingMessage && c.state != link.Blocked {
		return false
	}

	item := c.port.PeekIncoming()
	if item == nil {
		if c.state == link.AwaitingMessage {
			c.state = link.Blocked
			Trace("Core",
				"Behavior", "Blocked",
				"Name", c.Name(),
				"Time", float64(c.Engine.CurrentTime()*1e9),
				"Received", c.machine.Received(),
			)
		}

		return false
	}

	msg := item.(*link.ValueMsg)
	c.machine.Deliver(c.awaiting, msg.Value)
	c.port.RetrieveIncoming()
	c.state = link.Running

	Trace("DataFlow",
		"Behavior", "Recv",
		"Time", float64(c.Engine.CurrentTime()*1e9),
		"Value", msg.Value,
		"Register", c.awaiting.String(),
		"From", msg.Src,
		"To", msg.Dst,
	)

	return true
}

func (c *Core) fault(err error) {
	c.state = link.Faulted
	if c.machine.fault == nil {
		c.machine.fault = err
	}

	Trace("Core",
		"Behavior", "Faulted",
		"Name", c.Name(),
		"Error", err.Error(),
	)
}
