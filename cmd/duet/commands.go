package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/duet/config"
	"github.com/sarchlab/duet/program"
)

// flags holds the values of the global command-line flags.
type flags struct {
	configPath    string
	isa           string
	scheduler     string
	identity      string
	maxSteps      uint64
	logLevel      string
	traceFile     string
	showRegisters bool
	reportPath    string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "duet",
		Short: "Run register-machine programs",
		Long: `duet interprets programs of the snd/set/add/mul/mod/rcv/jgz machine.
A program runs alone to recover a frequency, as a pair of machines that
exchange values, or in the coprocessor dialect to count multiplications.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML run configuration")
	pf.StringVar(&f.isa, "isa", "", "instruction set: duet or coprocessor")
	pf.StringVar(&f.identity, "identity-register", "", "register seeded with the machine identity")
	pf.Uint64Var(&f.maxSteps, "max-steps", 0, "instructions each machine may run, 0 for no limit")
	pf.StringVar(&f.logLevel, "log-level", "", "trace, debug, info, warn or error")
	pf.StringVar(&f.traceFile, "trace-file", "", "also write JSON logs to this file")
	pf.BoolVar(&f.showRegisters, "registers", false, "print the final registers")

	soloCmd := &cobra.Command{
		Use:   "solo [program]",
		Short: "Run one machine and print the recovered frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, cleanup, err := f.prepare(cmd, args, config.ModeSolo)
			if err != nil {
				return err
			}
			defer cleanup()

			return runSolo(cmd.OutOrStdout(), cfg, prog)
		},
	}

	pairCmd := &cobra.Command{
		Use:   "pair [program]",
		Short: "Run two linked machines and print how many values machine 1 sent",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, cleanup, err := f.prepare(cmd, args, config.ModePair)
			if err != nil {
				return err
			}
			defer cleanup()

			return runPair(cmd.Context(), cmd.OutOrStdout(), cfg, prog, f.showRegisters)
		},
	}
	pairCmd.Flags().StringVar(&f.scheduler, "scheduler", "",
		"cooperative, concurrent or sim")

	coprocCmd := &cobra.Command{
		Use:   "coproc [program]",
		Short: "Run a coprocessor program and print how many mul instructions ran",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, cleanup, err := f.prepare(cmd, args, config.ModeCoproc)
			if err != nil {
				return err
			}
			defer cleanup()

			return runCoproc(cmd.OutOrStdout(), cfg, prog, f.showRegisters)
		},
	}

	lintCmd := &cobra.Command{
		Use:   "lint [program]",
		Short: "Check a program for likely mistakes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, prog, cleanup, err := f.prepare(cmd, args, config.ModeLint)
			if err != nil {
				return err
			}
			defer cleanup()

			return runLint(cmd.OutOrStdout(), cfg, prog, f.reportPath)
		},
	}
	lintCmd.Flags().StringVar(&f.reportPath, "report", "", "also save the issues to this file")

	rootCmd.AddCommand(soloCmd, pairCmd, coprocCmd, lintCmd)

	return rootCmd
}

// prepare merges the config file, the positional program path and the
// flags that were set, then sets up logging and loads the program. The
// caller must run cleanup once the command is done.
func (f *flags) prepare(
	cmd *cobra.Command,
	args []string,
	mode string,
) (cfg config.RunConfig, prog program.Program, cleanup func(), err error) {
	cfg = config.DefaultRunConfig()
	if f.configPath != "" {
		if cfg, err = config.LoadRunConfig(f.configPath); err != nil {
			return cfg, nil, nil, err
		}
	}

	cfg.Mode = mode
	if len(args) == 1 {
		cfg.Program = args[0]
	}

	changed := cmd.Flags().Changed
	if changed("isa") {
		cfg.ISA = f.isa
	}
	if changed("scheduler") {
		cfg.Scheduler = f.scheduler
	}
	if changed("identity-register") {
		cfg.IdentityRegister = f.identity
	}
	if changed("max-steps") {
		cfg.MaxSteps = f.maxSteps
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("trace-file") {
		cfg.TraceFile = f.traceFile
	}

	if err = cfg.Validate(); err != nil {
		return cfg, nil, nil, err
	}

	if cfg.Program == "" {
		return cfg, nil, nil, errors.New("no program given")
	}

	isa, err := cfg.ResolveISA()
	if err != nil {
		return cfg, nil, nil, err
	}

	if cleanup, err = setupLogging(cmd.ErrOrStderr(), cfg); err != nil {
		return cfg, nil, nil, err
	}

	if prog, err = program.LoadFile(cfg.Program, isa); err != nil {
		cleanup()
		return cfg, nil, nil, fmt.Errorf("%s mode: %w", mode, err)
	}

	return cfg, prog, cleanup, nil
}
