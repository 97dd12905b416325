package duet

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/duet/core"
	"github.com/sarchlab/duet/link"
	"github.com/sarchlab/duet/program"
)

var errDeadlock = errors.New("deadlock")

// sliceSize bounds how long a machine runs between context checks.
const sliceSize = 1 << 16

// RunConcurrent runs two copies of prog on their own goroutines. The
// machines only share their mailboxes. A machine that finds its mailbox
// empty tells the peer how many values it has sent and received, and a
// blocked machine declares deadlock once the latest note from its peer
// shows that nothing is in flight in either direction.
func RunConcurrent(ctx context.Context, prog program.Program, opts ...Option) (Result, error) {
	o := newOptions(opts)
	machines := o.newMachines()
	boxes := [2]*mailbox{newMailbox(), newMailbox()}

	var states [2]link.State

	g, ctx := errgroup.WithContext(ctx)
	for i := range machines {
		w := &worker{
			id:    i,
			opts:  o,
			prog:  prog,
			m:     machines[i],
			own:   boxes[i],
			peer:  boxes[1-i],
			state: &states[i],
		}

		g.Go(func() error {
			return w.run(ctx)
		})
	}

	err := g.Wait()

	res := Result{States: states}
	collect(machines, &res)

	switch {
	case errors.Is(err, errDeadlock):
		res.Deadlocked = true
		err = nil
	case err == nil:
	default:
		return res, err
	}

	core.Trace("Duet",
		"Scheduler", Concurrent.String(),
		"Behavior", "Finish",
		"Sent", res.Sent,
		"States", res.States,
		"Deadlocked", res.Deadlocked,
	)

	return res, nil
}

type worker struct {
	id   int
	opts options
	prog program.Program
	m    *core.Machine

	own, peer *mailbox
	peerNote  *note
	state     *link.State
}

func (w *worker) run(ctx context.Context) error {
	for {
		status, err := w.advance(ctx)
		for _, v := range w.m.TakeOutbox() {
			w.peer.put(note{kind: noteValue, value: v})
		}

		if err != nil {
			if !errors.Is(err, context.Canceled) {
				*w.state = link.Faulted
			}

			return fmt.Errorf("machine %d: %w", w.id, err)
		}

		if status.Kind == core.Terminated {
			*w.state = link.Terminated
			w.peer.put(w.counters(noteTerminated))

			return nil
		}

		*w.state = link.AwaitingMessage
		if err := w.receive(ctx, status); err != nil {
			return err
		}

		*w.state = link.Running
	}
}

// advance runs the machine until it suspends or terminates, checking the
// context between slices.
func (w *worker) advance(ctx context.Context) (core.Status, error) {
	for {
		if err := ctx.Err(); err != nil {
			return core.Status{}, err
		}

		if w.m.PC() < 0 || w.m.PC() >= w.prog.Len() {
			return core.Status{Kind: core.Terminated}, nil
		}

		budget := uint64(sliceSize)
		if limit := w.opts.stepLimit; limit > 0 {
			if w.m.Steps() >= limit {
				return core.Status{}, core.ErrStepLimit
			}

			budget = min(budget, limit-w.m.Steps())
		}

		status, err := w.m.Run(w.prog, int(budget))
		if err != nil || status.Kind != core.Preempted {
			return status, err
		}
	}
}

func (w *worker) receive(ctx context.Context, status core.Status) error {
	announced := false

	for {
		n, ok := w.own.take()
		if ok {
			if n.kind == noteValue {
				w.m.Deliver(status.Register, n.value)
				return nil
			}

			w.peerNote = &n

			continue
		}

		if !announced {
			*w.state = link.Blocked
			w.peer.put(w.counters(noteBlocked))
			announced = true

			core.Trace("Duet", "Behavior", "Blocked", "Machine", w.id,
				"Sent", w.m.Sent(), "Received", w.m.Received())
		}

		if w.peerStuck() {
			return errDeadlock
		}

		if err := w.own.wait(ctx); err != nil {
			return err
		}
	}
}

// peerStuck tells if the peer can never send again. The peer note is the
// last thing taken from the mailbox, so every value the peer sent before it
// has been received.
func (w *worker) peerStuck() bool {
	n := w.peerNote
	if n == nil || n.sent != w.m.Received() {
		return false
	}

	switch n.kind {
	case noteTerminated:
		return true
	case noteBlocked:
		return n.received == w.m.Sent()
	}

	return false
}

func (w *worker) counters(kind noteKind) note {
	return note{kind: kind, sent: w.m.Sent(), received: w.m.Received()}
}
