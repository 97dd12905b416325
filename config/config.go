// Package config provides the default configuration of a linked machine
// pair and the run configuration read by the command line.
package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"
	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/link"
)

// DeviceBuilder can build a pair of linked cores.
type DeviceBuilder struct {
	engine           sim.Engine
	freq             sim.Freq
	instsPerTick     int
	bufSize          int
	identityRegister instr.Register
	stepLimit        uint64
}

// MakeDeviceBuilder returns a builder with default parameters.
func MakeDeviceBuilder() DeviceBuilder {
	return DeviceBuilder{
		freq:             1 * sim.GHz,
		instsPerTick:     1,
		bufSize:          64,
		identityRegister: core.DefaultIdentityRegister,
	}
}

// WithEngine sets the engine that drives the device simulation.
func (d DeviceBuilder) WithEngine(engine sim.Engine) DeviceBuilder {
	d.engine = engine
	return d
}

// WithFreq sets the frequency of the device.
func (d DeviceBuilder) WithFreq(freq sim.Freq) DeviceBuilder {
	d.freq = freq
	return d
}

// WithInstsPerTick sets how many instructions each core runs per cycle.
func (d DeviceBuilder) WithInstsPerTick(n int) DeviceBuilder {
	d.instsPerTick = n
	return d
}

// WithBufferSize sets the capacity of the port buffers.
func (d DeviceBuilder) WithBufferSize(n int) DeviceBuilder {
	d.bufSize = n
	return d
}

// WithIdentityRegister sets the register seeded with each core's identity.
func (d DeviceBuilder) WithIdentityRegister(r instr.Register) DeviceBuilder {
	d.identityRegister = r
	return d
}

// WithStepLimit bounds the instructions each core may run.
func (d DeviceBuilder) WithStepLimit(n uint64) DeviceBuilder {
	d.stepLimit = n
	return d
}

// Build creates two cores and links their ports with one connection.
func (d DeviceBuilder) Build(name string) link.Device {
	dev := &device{
		Name:  name,
		Tiles: make([]*tile, 2),
	}

	coreBuilder := core.NewBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		WithInstsPerTick(d.instsPerTick).
		WithBufferSize(d.bufSize).
		WithIdentityRegister(d.identityRegister).
		WithStepLimit(d.stepLimit)

	conn := directconnection.MakeBuilder().
		WithEngine(d.engine).
		WithFreq(d.freq).
		Build(name + ".Link")

	for i := range dev.Tiles {
		c := coreBuilder.Build(fmt.Sprintf("%s.Tile[%d].Core", name, i))
		dev.Tiles[i] = &tile{Index: i, Core: c}
		conn.PlugIn(c.GetPort())
	}

	for i, t := range dev.Tiles {
		peer := dev.Tiles[1-i]
		t.SetRemotePort(peer.GetPort().AsRemote())
	}

	return dev
}
