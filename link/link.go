// Package link defines the data structures shared by machines that are
// linked together in a simulated device.
package link

import (
	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/duet/instr"
	"github.com/sarchlab/duet/program"
)

// State is the scheduling state of one linked machine.
type State int

const (
	Running State = iota
	AwaitingMessage
	Blocked
	Terminated
	Faulted
)

// Name returns the name of the state.
func (s State) Name() string {
	switch s {
	case Running:
		return "Running"
	case AwaitingMessage:
		return "AwaitingMessage"
	case Blocked:
		return "Blocked"
	case Terminated:
		return "Terminated"
	case Faulted:
		return "Faulted"
	default:
		panic("invalid state")
	}
}

func (s State) String() string {
	return s.Name()
}

// TileStats is the observable outcome of one tile.
type TileStats struct {
	State     State
	Sent      int
	Received  int
	Steps     uint64
	Registers instr.Registers
	Err       error
}

// Tile is one machine slot in a device.
type Tile interface {
	GetPort() sim.Port
	SetRemotePort(port sim.RemotePort)

	MapProgram(prog program.Program, identity int64)
	Kick()
	Stats() TileStats
	HasPendingInput() bool
}

// A Device is a set of linked tiles.
type Device interface {
	NumTiles() int
	GetTile(index int) Tile
}
