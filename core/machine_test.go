package core_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

func mustParse(text string) program.Program {
	prog, err := program.Parse(text, program.DuetISA)
	Expect(err).NotTo(HaveOccurred())
	return prog
}

func mustParseCoprocessor(text string) program.Program {
	prog, err := program.Parse(text, program.CoprocessorISA)
	Expect(err).NotTo(HaveOccurred())
	return prog
}

func register(letter byte) instr.Register {
	r, ok := instr.RegisterOf(letter)
	Expect(ok).To(BeTrue())
	return r
}

var _ = Describe("Machine", func() {
	var m *core.Machine

	BeforeEach(func() {
		m = core.NewMachine()
	})

	It("should terminate an empty program immediately", func() {
		status, err := m.RunUntilSuspend(nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
		Expect(m.Sent()).To(Equal(0))
		Expect(m.Received()).To(Equal(0))
		Expect(m.Steps()).To(BeZero())
	})

	It("should suspend on rcv with the pc past it", func() {
		prog := mustParse("snd 7\nrcv c\nadd c 1\nsnd c")

		status, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(status).To(Equal(core.Status{Kind: core.Suspended, Register: register('c')}))
		Expect(status.String()).To(Equal("Suspended(c)"))
		Expect(m.PC()).To(Equal(int64(2)))
		Expect(m.TakeOutbox()).To(Equal([]int64{7}))

		m.Deliver(status.Register, 41)
		status, err = m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
		Expect(m.Received()).To(Equal(1))
		Expect(m.Sent()).To(Equal(2))
		Expect(m.LastSent()).To(Equal(int64(42)))
		Expect(m.TakeOutbox()).To(Equal([]int64{42}))
		Expect(m.Pending()).To(BeZero())
	})

	It("should seed registers", func() {
		m.Seed(core.DefaultIdentityRegister, 1)

		status, err := m.RunUntilSuspend(mustParse("snd p"))

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
		Expect(m.LastSent()).To(Equal(int64(1)))
	})

	It("should jump backwards and terminate when leaving the program", func() {
		prog := mustParse("set a 3\nadd b 2\nadd a -1\njgz a -2\njgz 1 -10")

		status, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
		Expect(m.Register(register('b'))).To(Equal(int64(6)))
		Expect(m.PC()).To(Equal(int64(-6)))
	})

	It("should not jump on zero or negative conditions", func() {
		prog := mustParse("set a -1\njgz a 5\njgz 0 5\nsnd 1")

		_, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Sent()).To(Equal(1))
	})

	It("should use registers as jump offsets", func() {
		prog := mustParse("set o 2\njgz 1 o\nsnd 1\nsnd 2")

		_, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(m.TakeOutbox()).To(Equal([]int64{2}))
	})

	It("should wrap on overflow", func() {
		prog := mustParse("set a 9223372036854775807\nadd a 1\nset b a\nmul b -1")

		_, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Register(register('a'))).To(Equal(int64(math.MinInt64)))
		Expect(m.Register(register('b'))).To(Equal(int64(math.MinInt64)))
	})

	It("should keep the sign of the dividend in mod", func() {
		prog := mustParse("set a -7\nmod a 3\nset b 7\nmod b -3")

		_, err := m.RunUntilSuspend(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(m.Register(register('a'))).To(Equal(int64(-1)))
		Expect(m.Register(register('b'))).To(Equal(int64(1)))
	})

	It("should fault on mod by zero", func() {
		prog := mustParse("set a 5\nmod a b\nsnd a")

		_, err := m.RunUntilSuspend(prog)

		Expect(errors.Is(err, core.ErrModByZero)).To(BeTrue())

		var execErr *core.ExecError
		Expect(errors.As(err, &execErr)).To(BeTrue())
		Expect(execErr.PC).To(Equal(int64(1)))
		Expect(execErr.Inst.String()).To(Equal("mod a b"))
		Expect(err).To(MatchError("mod by zero at 1 (mod a b)"))

		_, again := m.RunUntilSuspend(prog)
		Expect(again).To(BeIdenticalTo(err))
		Expect(m.Sent()).To(Equal(0))
	})

	It("should stop after the budget", func() {
		status, err := m.Run(mustParse("jgz 1 0"), 5)

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Preempted))
		Expect(m.Steps()).To(Equal(uint64(5)))
	})

	It("should report termination before the budget check", func() {
		status, err := m.Run(mustParse("snd 1\nsnd 2"), 2)

		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
	})

	It("should produce the same sends on every run", func() {
		prog := mustParse("set a 1\nsnd a\nmul a 3\nadd i 1\nset t i\nadd t -5\njgz t 2\njgz 1 -6")

		first := core.NewMachine()
		_, err := first.RunUntilSuspend(prog)
		Expect(err).NotTo(HaveOccurred())

		second := core.NewMachine()
		_, err = second.RunUntilSuspend(prog)
		Expect(err).NotTo(HaveOccurred())

		Expect(first.TakeOutbox()).To(Equal(second.TakeOutbox()))
		Expect(first.Registers()).To(Equal(second.Registers()))
	})
})

var _ = Describe("RecoverFrequency", func() {
	It("should recover the last sent value", func() {
		prog := mustParse(`set a 1
add a 2
mul a a
mod a 5
snd a
set a 0
rcv a
jgz a -1
set a 1
jgz a -2`)

		value, err := core.RecoverFrequency(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(int64(4)))
	})

	It("should report programs that never recover", func() {
		prog := mustParse("snd 3\nrcv a\nsnd 4")

		_, err := core.RecoverFrequency(prog)

		Expect(err).To(MatchError(core.ErrNoRecovery))
	})

	It("should give up at the step limit", func() {
		prog := mustParse("snd 1\nrcv a\njgz 1 -2")

		_, err := core.RecoverFrequency(prog, core.WithStepLimit(1000))

		Expect(err).To(MatchError(core.ErrStepLimit))
	})

	It("should surface runtime faults", func() {
		_, err := core.RecoverFrequency(mustParse("mod a 0"))

		Expect(err).To(MatchError(core.ErrModByZero))
	})
})

var _ = Describe("CountMultiplies", func() {
	It("should count executed mul instructions", func() {
		prog := mustParseCoprocessor("set a 3\nset b 1\nmul b 2\nsub a 1\njnz a -2")

		stats, err := core.CountMultiplies(prog)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Muls).To(Equal(3))
		Expect(stats.Steps).To(Equal(uint64(11)))
		Expect(stats.Registers[register('b')]).To(Equal(int64(8)))
	})

	It("should abort infinite loops", func() {
		prog := mustParseCoprocessor("mul a 2\njnz 1 -1")

		_, err := core.CountMultiplies(prog, core.WithStepLimit(100))

		Expect(err).To(MatchError(core.ErrStepLimit))
	})
})

var _ = Describe("Advance", func() {
	It("should let a machine that suspended on its last step terminate", func() {
		m := core.NewMachine()
		prog := mustParse("snd 1\nrcv a")

		status, err := core.Advance(m, prog, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Suspended))

		status, err = core.Advance(m, prog, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(status.Kind).To(Equal(core.Terminated))
	})

	It("should keep returning the fault of a faulted machine", func() {
		m := core.NewMachine()
		prog := mustParse("mod a 0")

		_, err := core.Advance(m, prog, 10)
		Expect(err).To(MatchError(core.ErrModByZero))

		_, err = core.Advance(m, prog, 10)
		Expect(err).To(MatchError(core.ErrModByZero))
	})
})
