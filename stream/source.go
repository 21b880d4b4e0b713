package stream

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/kbukum/recordkit/errors"
)

// DefaultSourceBuffer is the channel capacity used when NewSource is given a
// non-positive size.
const DefaultSourceBuffer = 64

// Source is the push-mode head of a stream graph. A producer calls Push for
// each value, then Close (or Fail to end the stream with an error). The
// bounded buffer suspends the producer when the consumer falls behind,
// preserving order end to end.
//
// Push, Fail, and Close are intended for a single producer goroutine.
type Source[T any] struct {
	ch        chan result[T]
	closed    atomic.Bool
	closeOnce sync.Once
	stream    *Stream[T]
	once      sync.Once
}

// NewSource creates a Source with the given buffer capacity.
func NewSource[T any](buffer int) *Source[T] {
	if buffer <= 0 {
		buffer = DefaultSourceBuffer
	}
	return &Source[T]{ch: make(chan result[T], buffer)}
}

// Push sends a value downstream, blocking while the buffer is full.
// Returns a STREAM_CLOSED error after Close or Fail, or the context error
// if ctx ends first.
func (s *Source[T]) Push(ctx context.Context, val T) error {
	if s.closed.Load() {
		return errors.StreamClosed("push")
	}
	select {
	case s.ch <- result[T]{val: val, ok: true}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fail ends the stream with err. Consumers see err from their next pull.
func (s *Source[T]) Fail(err error) {
	if s.closed.Load() || err == nil {
		return
	}
	s.ch <- result[T]{err: err}
	s.Close()
}

// Close ends the stream normally. Idempotent.
func (s *Source[T]) Close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.ch)
	})
}

// Closed reports whether the source has been closed or failed.
func (s *Source[T]) Closed() bool {
	return s.closed.Load()
}

// Stream returns the stream view of this source. The same stage is returned
// on every call; a Source feeds exactly one consumer.
func (s *Source[T]) Stream() *Stream[T] {
	s.once.Do(func() {
		s.stream = &Stream[T]{
			create: func(_ context.Context) Iterator[T] {
				return &channelIter[T]{ch: s.ch}
			},
		}
	})
	return s.stream
}
