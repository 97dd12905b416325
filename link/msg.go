package link

import "github.com/sarchlab/akita/v4/sim"

// ValueMsg moves one value from a machine to its peer.
type ValueMsg struct {
	sim.MsgMeta

	Value int64
}

// Meta returns the meta data of the msg.
func (m *ValueMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone returns a copy of the msg with a new ID.
func (m *ValueMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()

	return &clone
}

// ValueMsgBuilder is a factory for ValueMsg.
type ValueMsgBuilder struct {
	src, dst sim.RemotePort
	value    int64
}

// WithSrc sets the source port of the msg.
func (b ValueMsgBuilder) WithSrc(src sim.RemotePort) ValueMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b ValueMsgBuilder) WithDst(dst sim.RemotePort) ValueMsgBuilder {
	b.dst = dst
	return b
}

// WithValue sets the value carried by the msg.
func (b ValueMsgBuilder) WithValue(value int64) ValueMsgBuilder {
	b.value = value
	return b
}

// Build creates a ValueMsg.
func (b ValueMsgBuilder) Build() *ValueMsg {
	return &ValueMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Value: b.value,
	}
}
