package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/duet/api"
	"github.com/sarchlab/duet/config"
	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/duet"
	"github.com/sarchlab/duet/program"
	"github.com/sarchlab/duet/verify"
)

func runSolo(out io.Writer, cfg config.RunConfig, prog program.Program) error {
	value, err := core.RecoverFrequency(prog, core.WithStepLimit(cfg.MaxSteps))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, value)

	return nil
}

func runCoproc(out io.Writer, cfg config.RunConfig, prog program.Program, showRegisters bool) error {
	stats, err := core.CountMultiplies(prog, core.WithStepLimit(cfg.MaxSteps))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, stats.Muls)

	if showRegisters {
		verify.RenderRegisters(out, stats.Registers)
	}

	return nil
}

func runPair(
	ctx context.Context,
	out io.Writer,
	cfg config.RunConfig,
	prog program.Program,
	showRegisters bool,
) error {
	scheduler, err := duet.ParseScheduler(cfg.Scheduler)
	if err != nil {
		return err
	}

	identity, err := cfg.Identity()
	if err != nil {
		return err
	}

	var res duet.Result

	switch scheduler {
	case duet.Cooperative:
		res, err = duet.RunCooperative(prog,
			duet.WithStepLimit(cfg.MaxSteps),
			duet.WithIdentityRegister(identity))
	case duet.Concurrent:
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		res, err = duet.RunConcurrent(ctx, prog,
			duet.WithStepLimit(cfg.MaxSteps),
			duet.WithIdentityRegister(identity))
	case duet.Simulated:
		res, err = runSimulated(cfg, prog)
	}

	if err != nil {
		return err
	}

	fmt.Fprintln(out, res.Answer())

	if showRegisters {
		verify.RenderResult(out, res)
		verify.RenderRegisters(out, res.Registers[0], res.Registers[1])
	}

	return nil
}

func runSimulated(cfg config.RunConfig, prog program.Program) (duet.Result, error) {
	identity, err := cfg.Identity()
	if err != nil {
		return duet.Result{}, err
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		Build()

	device := config.MakeDeviceBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithIdentityRegister(identity).
		WithStepLimit(cfg.MaxSteps).
		Build("Device")

	driver.RegisterDevice(device)
	driver.MapProgram(prog)

	return driver.Run()
}

func runLint(out io.Writer, cfg config.RunConfig, prog program.Program, reportPath string) error {
	identity, err := cfg.Identity()
	if err != nil {
		return err
	}

	issues := verify.Lint(prog, verify.WithIdentityRegister(identity))
	verify.RenderIssues(out, issues)

	if reportPath != "" {
		return verify.SaveIssuesToFile(reportPath, issues)
	}

	return nil
}
