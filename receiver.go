package amsterdam

// Receiver is the consuming handle of a channel. Any number of Receivers
// may drain the same channel; each queued value is delivered to exactly one
// of them.
//
// A single Receiver is not safe for simultaneous use by multiple
// goroutines. Give each goroutine its own handle via Clone; clones share
// the channel and may be used concurrently with each other.
type Receiver[T any] struct {
	ch     *channel[T]
	closed bool
}

// Pop removes and returns the oldest queued value, blocking while the queue
// is empty and at least one Sender is live. It returns ErrRecv once every
// Sender has been closed and the queue has been drained; at that point no
// further value can ever arrive.
func (r *Receiver[T]) Pop() (T, error) {
	if r.closed {
		panic("amsterdam: Pop on closed Receiver")
	}
	return r.ch.pop()
}

// TryPop removes and returns the oldest queued value without blocking. ok
// reports whether a value was dequeued. An empty queue is not an error
// while Senders remain; TryPop returns (zero, false, nil) and the caller
// may retry. Like Pop, it returns ErrRecv once every Sender has been closed
// and the queue has been drained.
func (r *Receiver[T]) TryPop() (elem T, ok bool, err error) {
	if r.closed {
		panic("amsterdam: TryPop on closed Receiver")
	}
	return r.ch.tryPop()
}

// Clone connects a new Receiver to the same channel. The channel keeps
// accepting Pushes until every Receiver, this one and all clones included,
// has been closed.
func (r *Receiver[T]) Clone() *Receiver[T] {
	if r.closed {
		panic("amsterdam: Clone of closed Receiver")
	}
	r.ch.connectRx()
	return &Receiver[T]{ch: r.ch}
}

// Close disconnects this Receiver from the channel. Closing the last
// Receiver discards whatever is still queued and makes every later Push
// fail with ErrSend. Close is idempotent, and every other method panics
// once the Receiver is closed.
func (r *Receiver[T]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.ch.disconnectRx()
}
