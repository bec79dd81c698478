package amsterdam

import "errors"

// Channel errors. Both conditions are permanent for a channel: once one of
// these has been returned, every later call on the same side reports it
// again. Test for them with errors.Is.
var (
	// ErrSend is returned by Push when every Receiver of the channel has
	// been closed. The pushed value is refused, not queued.
	ErrSend = errors.New("amsterdam: all receivers hung up")

	// ErrRecv is returned by Pop and TryPop when every Sender of the
	// channel has been closed and the queue has been drained.
	ErrRecv = errors.New("amsterdam: all senders hung up")
)
