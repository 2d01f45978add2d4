package hud

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler invokes a callback once, on the next display refresh.
type Scheduler interface {
	RequestFrame(cb func()) FrameID
	CancelFrame(id FrameID)
}

// FrameLoop is a Scheduler driven by an external tick source: the ebiten
// Update hook in the window, or a plain loop in tests and snapshots.
//
// Callbacks requested while a tick is running are deferred to the next tick.
type FrameLoop struct {
	next    FrameID
	pending map[FrameID]func()
	order   []FrameID
}

// NewFrameLoop creates an empty loop.
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{pending: make(map[FrameID]func())}
}

func (l *FrameLoop) RequestFrame(cb func()) FrameID {
	l.next++
	id := l.next
	l.pending[id] = cb
	l.order = append(l.order, id)
	return id
}

func (l *FrameLoop) CancelFrame(id FrameID) {
	delete(l.pending, id)
}

// Tick runs every callback that was pending when it was called and returns
// how many ran.
func (l *FrameLoop) Tick() int {
	ids := l.order
	l.order = nil

	ran := 0
	for _, id := range ids {
		cb, ok := l.pending[id]
		if !ok {
			continue
		}
		delete(l.pending, id)
		cb()
		ran++
	}
	return ran
}

// Pending returns the number of callbacks waiting for the next tick.
func (l *FrameLoop) Pending() int {
	return len(l.pending)
}
