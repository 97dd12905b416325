package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/duet"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

// Modes understood by the command line.
const (
	ModeSolo   = "solo"
	ModePair   = "pair"
	ModeCoproc = "coproc"
	ModeLint   = "lint"
)

// RunConfig describes one run of the command line. Empty fields take their
// defaults.
type RunConfig struct {
	Program          string `yaml:"program"`
	ISA              string `yaml:"isa"`
	Mode             string `yaml:"mode"`
	Scheduler        string `yaml:"scheduler"`
	IdentityRegister string `yaml:"identity_register"`
	MaxSteps         uint64 `yaml:"max_steps"`
	LogLevel         string `yaml:"log_level"`
	TraceFile        string `yaml:"trace_file"`
}

// DefaultRunConfig returns the configuration used without a config file.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Mode:             ModePair,
		Scheduler:        duet.Cooperative.String(),
		IdentityRegister: core.DefaultIdentityRegister.String(),
		LogLevel:         "warn",
	}
}

// LoadRunConfig reads a YAML run configuration on top of the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that every field names something that exists.
func (c RunConfig) Validate() error {
	switch c.Mode {
	case ModeSolo, ModePair, ModeCoproc, ModeLint:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}

	if _, err := program.LookupISA(c.ISA); err != nil {
		return err
	}

	if _, err := duet.ParseScheduler(c.Scheduler); err != nil {
		return err
	}

	if _, err := c.Identity(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Identity returns the register that holds the machine identity.
func (c RunConfig) Identity() (instr.Register, error) {
	if c.IdentityRegister == "" {
		return core.DefaultIdentityRegister, nil
	}

	if len(c.IdentityRegister) == 1 {
		if r, ok := instr.RegisterOf(c.IdentityRegister[0]); ok {
			return r, nil
		}
	}

	return 0, fmt.Errorf("invalid identity register %q", c.IdentityRegister)
}

// Level maps the log level name to a slog level. "trace" selects
// core.LevelTrace.
func (c RunConfig) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "trace":
		return core.LevelTrace, nil
	case "":
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}

	return level, nil
}

// ResolveISA returns the instruction set for the run. The coprocessor mode
// defaults to the coprocessor dialect.
func (c RunConfig) ResolveISA() (*program.ISA, error) {
	if c.ISA == "" && c.Mode == ModeCoproc {
		return program.CoprocessorISA, nil
	}

	return program.LookupISA(c.ISA)
}
