// Package api defines the driver API for a simulated machine pair.
package api

import (
	"errors"
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/duet"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

// ErrNoProgram is returned by Run when no program has been mapped.
var ErrNoProgram = errors.New("no program mapped")

// ErrStalled is returned when the simulation stops while a tile could still
// make progress.
var ErrStalled = errors.New("simulation stalled")

// Driver provides the interface to control a simulated pair.
type Driver interface {
	// RegisterDevice registers a device to the driver. The device must hold
	// exactly two tiles whose ports are already linked.
	RegisterDevice(device link.Device)

	// MapProgram maps the program to both tiles. Tile i runs with identity
	// i.
	MapProgram(prog program.Program)

	// Run starts the tiles, runs the engine until nothing can make progress
	// and reports the outcome.
	Run() (duet.Result, error)
}

type driverImpl struct {
	engine sim.Engine
	device link.Device
	mapped bool
}

// RegisterDevice registers a device to the driver.
func (d *driverImpl) RegisterDevice(device link.Device) {
	if device.NumTiles() != 2 {
		panic(fmt.Sprintf("a pair needs 2 tiles, got %d", device.NumTiles()))
	}

	d.device = device
}

// MapProgram dispatches a program to both tiles.
func (d *driverImpl) MapProgram(prog program.Program) {
	for i := 0; i < d.device.NumTiles(); i++ {
		d.device.GetTile(i).MapProgram(prog, int64(i))
	}

	d.mapped = true
}

// Run runs the simulation to quiescence.
func (d *driverImpl) Run() (duet.Result, error) {
	if !d.mapped {
		return duet.Result{}, ErrNoProgram
	}

	for i := 0; i < d.device.NumTiles(); i++ {
		d.device.GetTile(i).Kick()
	}

	if err := d.engine.Run(); err != nil {
		return duet.Result{}, fmt.Errorf("engine: %w", err)
	}

	return d.classify()
}

func (d *driverImpl) classify() (duet.Result, error) {
	res := duet.Result{}
	terminated := 0
	waiting := 0

	for i := range res.States {
		tile := d.device.GetTile(i)
		stats := tile.Stats()

		res.Sent[i] = stats.Sent
		res.Received[i] = stats.Received
		res.States[i] = stats.State
		res.Registers[i] = stats.Registers

		switch {
		case stats.Err != nil:
			return res, fmt.Errorf("machine %d: %w", i, stats.Err)
		case stats.State == link.Terminated:
			terminated++
		case stats.State == link.Blocked && !tile.HasPendingInput():
			waiting++
		}
	}

	switch {
	case terminated == len(res.States):
	case terminated+waiting == len(res.States):
		res.Deadlocked = true
	default:
		return res, fmt.Errorf("%w: states %v", ErrStalled, res.States)
	}

	core.Trace("Duet",
		"Scheduler", duet.Simulated.String(),
		"Behavior", "Finish",
		"Time", float64(d.engine.CurrentTime()*1e9),
		"Sent", res.Sent,
		"States", res.States,
		"Deadlocked", res.Deadlocked,
	)

	return res, nil
}
