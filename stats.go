package amsterdam

// Stats is a point-in-time snapshot of one channel's internals, taken under
// the channel lock. It is advisory: the channel may have moved on by the
// time the caller inspects it. In particular, Len is immediately stale and
// must not be used to decide whether a Pop would block.
type Stats struct {
	// Len is the number of queued values.
	Len int

	// Senders and Receivers are the live handle counts. A zero on either
	// side is permanent.
	Senders   int
	Receivers int
}

// Stats reports a snapshot of the channel this Sender feeds.
func (s *Sender[T]) Stats() Stats {
	if s.closed {
		panic("amsterdam: Stats on closed Sender")
	}
	return s.ch.stats()
}

// Len reports the number of queued values. Shorthand for Stats().Len.
func (s *Sender[T]) Len() int {
	return s.Stats().Len
}

// Stats reports a snapshot of the channel this Receiver drains.
func (r *Receiver[T]) Stats() Stats {
	if r.closed {
		panic("amsterdam: Stats on closed Receiver")
	}
	return r.ch.stats()
}

// Len reports the number of queued values. Shorthand for Stats().Len.
func (r *Receiver[T]) Len() int {
	return r.Stats().Len
}
