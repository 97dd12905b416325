package duet

import (
	"context"
	"sync"
)

type noteKind int

const (
	noteValue noteKind = iota
	noteBlocked
	noteTerminated
)

// note is one mailbox entry. Blocked and terminated notes carry the
// counters of the machine that posted them.
type note struct {
	kind     noteKind
	value    int64
	sent     int
	received int
}

// mailbox is an unbounded FIFO owned by one receiving goroutine.
type mailbox struct {
	mu     sync.Mutex
	items  []note
	signal chan struct{}
}

func newMailbox() *mailbox {
	return &mailbox{signal: make(chan struct{}, 1)}
}

func (b *mailbox) put(n note) {
	b.mu.Lock()
	b.items = append(b.items, n)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *mailbox) take() (note, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.items) == 0 {
		return note{}, false
	}

	n := b.items[0]
	b.items = b.items[1:]

	return n, true
}

// wait blocks until something is put after the last wait returned.
func (b *mailbox) wait(ctx context.Context) error {
	select {
	case <-b.signal:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
