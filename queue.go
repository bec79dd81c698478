package amsterdam

import "sync"

// node is one queued element. Nodes link intrusively, each carrying the
// pointer to its successor, so the queue needs no backing array and a node
// is reachable from at most one place at a time.
type node[T any] struct {
	elem T
	next *node[T]
}

// queue is the synchronized core shared by every handle of one channel: an
// intrusive FIFO list plus the live handle counts, all guarded by a single
// mutex. nonEmpty is signaled once per push and broadcast when the last
// sender disconnects; those are the only two events that can settle a
// blocked pop.
type queue[T any] struct {
	mu       sync.Mutex
	nonEmpty sync.Cond

	head   *node[T]
	tail   *node[T]
	length int

	senders   int
	receivers int
}

// init prepares a zero queue for use. Both counts start at one: New hands
// out the channel's first Sender and Receiver together.
func (q *queue[T]) init() {
	q.senders = 1
	q.receivers = 1
	q.nonEmpty.L = &q.mu
}

// push appends n to the tail and wakes one blocked pop. If every receiver
// has hung up the node is refused and push returns ErrSend; ownership of n
// stays with the caller.
func (q *queue[T]) push(n *node[T]) error {
	q.mu.Lock()
	if q.receivers == 0 {
		q.mu.Unlock()
		return ErrSend
	}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	q.mu.Unlock()

	q.nonEmpty.Signal()
	return nil
}

// tryPop detaches the head node if one is queued. An empty queue is not an
// error while senders remain; tryPop reports that as (nil, nil). Once the
// queue is empty and every sender has hung up it returns ErrRecv.
func (q *queue[T]) tryPop() (*node[T], error) {
	q.mu.Lock()
	n, err := q.dequeueLocked()
	q.mu.Unlock()
	return n, err
}

// pop detaches the head node, blocking while the queue is empty and at
// least one sender is live. The predicate is re-checked after every wakeup,
// so pop never returns spuriously and never spins.
func (q *queue[T]) pop() (*node[T], error) {
	q.mu.Lock()
	for q.head == nil && q.senders > 0 {
		q.nonEmpty.Wait()
	}
	n, err := q.dequeueLocked()
	q.mu.Unlock()
	return n, err
}

// dequeueLocked removes and returns the head node, clearing its next link.
// Callers must hold mu. Hang-up is checked here, under the same lock
// acquisition as the emptiness check, so the two can never disagree.
func (q *queue[T]) dequeueLocked() (*node[T], error) {
	n := q.head
	if n == nil {
		if q.senders == 0 {
			return nil, ErrRecv
		}
		return nil, nil
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.length--
	return n, nil
}

// connectTx registers one more live sender. Only ever called through a live
// handle, so the count is at least one on entry.
func (q *queue[T]) connectTx() {
	q.mu.Lock()
	q.senders++
	q.mu.Unlock()
}

// connectRx registers one more live receiver.
func (q *queue[T]) connectRx() {
	q.mu.Lock()
	q.receivers++
	q.mu.Unlock()
}

// disconnectTx retires one sender. When the last sender disconnects, every
// blocked pop is woken so it can drain the queue and then observe ErrRecv.
func (q *queue[T]) disconnectTx() {
	q.mu.Lock()
	q.senders--
	last := q.senders == 0
	q.mu.Unlock()

	if last {
		q.nonEmpty.Broadcast()
	}
}

// disconnectRx retires one receiver. When the last receiver disconnects,
// queued values can never be delivered; the list is unlinked so they become
// garbage immediately rather than holding memory until the channel itself
// is collected.
func (q *queue[T]) disconnectRx() {
	q.mu.Lock()
	q.receivers--
	if q.receivers == 0 {
		q.head = nil
		q.tail = nil
		q.length = 0
	}
	q.mu.Unlock()
}

// stats snapshots the queue length and both live counts under the lock.
func (q *queue[T]) stats() Stats {
	q.mu.Lock()
	s := Stats{Len: q.length, Senders: q.senders, Receivers: q.receivers}
	q.mu.Unlock()
	return s
}
