package amsterdam

import "sync"

// channel pairs the synchronized queue core with node allocation for one
// element type. Detached nodes are zeroed and recycled through a pool, so a
// channel in steady state queues values without allocating.
type channel[T any] struct {
	q    queue[T]
	pool sync.Pool
}

// New creates an asynchronous channel for values of type T and returns its
// first Sender and Receiver. The channel stays alive for as long as any
// handle refers to it and is reclaimed by the garbage collector after the
// last one is closed.
func New[T any]() (*Sender[T], *Receiver[T]) {
	ch := newChannel[T]()
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

func newChannel[T any]() *channel[T] {
	ch := &channel[T]{}
	ch.q.init()
	ch.pool.New = func() any { return new(node[T]) }
	return ch
}

// push wraps elem in a node and hands it to the queue. A refused node never
// entered the queue; it is recycled here so a failed push leaks nothing.
func (c *channel[T]) push(elem T) error {
	n := c.pool.Get().(*node[T])
	n.elem = elem
	if err := c.q.push(n); err != nil {
		c.recycle(n)
		return err
	}
	return nil
}

// pop blocks for the next value. The detached node is zeroed and recycled
// before the value is returned, so the channel never aliases memory the
// caller holds.
func (c *channel[T]) pop() (T, error) {
	n, err := c.q.pop()
	if err != nil {
		var zero T
		return zero, err
	}
	elem := n.elem
	c.recycle(n)
	return elem, nil
}

// tryPop is the non-blocking variant of pop. ok reports whether a value was
// dequeued; an empty queue with live senders yields (zero, false, nil).
func (c *channel[T]) tryPop() (T, bool, error) {
	n, err := c.q.tryPop()
	if n == nil {
		var zero T
		return zero, false, err
	}
	elem := n.elem
	c.recycle(n)
	return elem, true, nil
}

// recycle zeroes a detached node and returns it to the pool.
func (c *channel[T]) recycle(n *node[T]) {
	var zero T
	n.elem = zero
	n.next = nil
	c.pool.Put(n)
}

func (c *channel[T]) connectTx()    { c.q.connectTx() }
func (c *channel[T]) connectRx()    { c.q.connectRx() }
func (c *channel[T]) disconnectTx() { c.q.disconnectTx() }
func (c *channel[T]) disconnectRx() { c.q.disconnectRx() }
func (c *channel[T]) stats() Stats  { return c.q.stats() }
