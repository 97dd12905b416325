package duet

import (
	"fmt"

	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/instr"
)

// Option configures a pair run.
type Option func(*options)

type options struct {
	stepLimit        uint64
	identityRegister instr.Register
}

// WithStepLimit fails the run with core.ErrStepLimit once either machine
// needs more than n instructions. Zero disables the limit.
func WithStepLimit(n uint64) Option {
	return func(o *options) {
		o.stepLimit = n
	}
}

// WithIdentityRegister sets the register that holds the machine identity.
func WithIdentityRegister(r instr.Register) Option {
	if !r.Valid() {
		panic(fmt.Sprintf("register %d out of range", r))
	}

	return func(o *options) {
		o.identityRegister = r
	}
}

func newOptions(opts []Option) options {
	o := options{identityRegister: core.DefaultIdentityRegister}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o options) newMachines() [2]*core.Machine {
	var machines [2]*core.Machine
	for i := range machines {
		machines[i] = core.NewMachine()
		machines[i].Seed(o.identityRegister, int64(i))
	}

	return machines
}

func collect(machines [2]*core.Machine, res *Result) {
	for i, m := range machines {
		res.Sent[i] = m.Sent()
		res.Received[i] = m.Received()
		res.Registers[i] = m.Registers()
	}
}
