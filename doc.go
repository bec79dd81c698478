// Package amsterdam provides asynchronous channels for passing values
// between goroutines.
//
// A channel is an unbounded FIFO queue connecting any number of producing
// handles to any number of consuming handles. Unlike the built-in chan, a
// push never blocks, and each side detects when the other has hung up
// entirely instead of deadlocking or panicking.
//
// The main components include:
//
//   - Sender: the producing handle; Push enqueues a value and reports ErrSend once every Receiver is gone
//   - Receiver: the consuming handle; Pop blocks for the next value, TryPop polls without blocking, and both report ErrRecv once every Sender is gone and the queue has been drained
//   - Stats: an advisory snapshot of the queue length and live handle counts
//
// Handles are cloned, not shared: give each goroutine its own Sender or
// Receiver via Clone and Close it when the goroutine is done. The channel
// lives for as long as any handle refers to it. Closing the last Sender
// wakes every blocked Pop so the queue can be drained; closing the last
// Receiver discards whatever is still queued.
package amsterdam
