package config

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

type tileCore interface {
	sim.Component
	GetPort() sim.Port
	SetRemotePort(port sim.RemotePort)
	MapProgram(prog program.Program, identity int64)
	Kick()
	Stats() link.TileStats
	HasPendingInput() bool
}

type tile struct {
	Index int
	Core  tileCore
}

// GetPort returns the port that links the tile to its peer.
func (t tile) GetPort() sim.Port {
	return t.Core.GetPort()
}

func (t tile) String() string {
	return fmt.Sprintf("Tile(%d)", t.Index)
}

// SetRemotePort sets the port that the core sends values to.
func (t tile) SetRemotePort(port sim.RemotePort) {
	t.Core.SetRemotePort(port)
}

// MapProgram sets the program that the tile needs to run.
func (t tile) MapProgram(prog program.Program, identity int64) {
	t.Core.MapProgram(prog, identity)
}

// Kick schedules the first cycle of the tile.
func (t tile) Kick() {
	t.Core.Kick()
}

// Stats returns the counters and state of the tile.
func (t tile) Stats() link.TileStats {
	return t.Core.Stats()
}

// HasPendingInput tells if a value is waiting at the tile's port.
func (t tile) HasPendingInput() bool {
	return t.Core.HasPendingInput()
}

// A device is a set of tiles whose ports share one connection.
type device struct {
	Name  string
	Tiles []*tile
}

// NumTiles returns the number of tiles in the device.
func (d *device) NumTiles() int {
	return len(d.Tiles)
}

// GetTile returns the tile at the given index.
func (d *device) GetTile(index int) link.Tile {
	return d.Tiles[index]
}
