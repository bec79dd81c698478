package amsterdam

// Sender is the producing handle of a channel. Any number of Senders may
// feed the same channel; the channel accepts pushes until every one of them
// has been closed.
//
// A single Sender is not safe for simultaneous use by multiple goroutines.
// Give each goroutine its own handle via Clone; clones share the channel
// and may be used concurrently with each other.
type Sender[T any] struct {
	ch     *channel[T]
	closed bool
}

// Push enqueues elem and wakes one blocked Pop. It never blocks; the queue
// is unbounded. Push returns ErrSend if every Receiver has been closed, in
// which case the value was refused, not queued.
func (s *Sender[T]) Push(elem T) error {
	if s.closed {
		panic("amsterdam: Push on closed Sender")
	}
	return s.ch.push(elem)
}

// Clone connects a new Sender to the same channel. The channel keeps
// accepting Pops until every Sender, this one and all clones included, has
// been closed.
func (s *Sender[T]) Clone() *Sender[T] {
	if s.closed {
		panic("amsterdam: Clone of closed Sender")
	}
	s.ch.connectTx()
	return &Sender[T]{ch: s.ch}
}

// Close disconnects this Sender from the channel. Closing the last Sender
// wakes every blocked Pop; each drains what is queued and then fails with
// ErrRecv. Close is idempotent, and every other method panics once the
// Sender is closed.
func (s *Sender[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.ch.disconnectTx()
}
