package core

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/instr"
)

// DefaultIdentityRegister holds the machine identity in linked runs.
const DefaultIdentityRegister = instr.Register('p' - 'a')

// Builder can create new cores.
type Builder struct {
	engine           sim.Engine
	freq             sim.Freq
	instsPerTick     int
	bufSize          int
	identityRegister instr.Register
	stepLimit        uint64
}

// NewBuilder returns a builder with default parameters.
func NewBuilder() Builder {
	return Builder{
		freq:             1 * sim.GHz,
		instsPerTick:     1,
		bufSize:          64,
		identityRegister: DefaultIdentityRegister,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithInstsPerTick sets how many instructions the core executes per cycle.
func (b Builder) WithInstsPerTick(n int) Builder {
	if n < 1 {
		panic("Need at least 1 instruction per tick")
	}
	b.instsPerTick = n
	return b
}

// WithBufferSize sets the capacity of the port buffers.
func (b Builder) WithBufferSize(n int) Builder {
	b.bufSize = n
	return b
}

// WithIdentityRegister sets the register seeded with the core identity.
func (b Builder) WithIdentityRegister(r instr.Register) Builder {
	if !r.Valid() {
		panic(fmt.Sprintf("register %d out of range", r))
	}
	b.identityRegister = r
	return b
}

// WithStepLimit faults the core once its machine needs more than n
// instructions. Zero disables the limit.
func (b Builder) WithStepLimit(n uint64) Builder {
	b.stepLimit = n
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{
		identityRegister: b.identityRegister,
		instsPerTick:     b.instsPerTick,
		stepLimit:        b.stepLimit,
	}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.port = sim.NewPort(c, b.bufSize, b.bufSize, name+".Link")
	c.AddPort("Link", c.port)

	return c
}
