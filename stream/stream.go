package stream

import (
	"context"
	"sync"
)

// Iterator provides pull-based sequential access to a stream of values.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// Stream represents a lazy, pull-based sequence of values.
// No work happens until values are pulled via Collect, Drain, or ForEach.
//
// Each Stream is one stage in a pipeline graph. Values passing through a
// stage are broadcast to observers registered on that stage with Observe.
type Stream[T any] struct {
	create func(ctx context.Context) Iterator[T]

	mu        sync.Mutex
	observers []func(T)
	onConsume func()
	consumed  bool
}

// Runnable is a fully-configured stream ready to execute.
type Runnable struct {
	run func(ctx context.Context) error
}

// Run executes the stream until completion or context cancellation.
func (r *Runnable) Run(ctx context.Context) error {
	return r.run(ctx)
}

// result carries a value or error through a channel.
type result[T any] struct {
	val T
	ok  bool
	err error
}

// channelIter reads values from a channel. Used by Source and Buffer.
type channelIter[T any] struct {
	ch     <-chan result[T]
	closer func() error
}

func (it *channelIter[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case r, open := <-it.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return r.val, r.ok, r.err
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (it *channelIter[T]) Close() error {
	if it.closer != nil {
		return it.closer()
	}
	return nil
}

// --- Constructors ---

// From creates a stream from an existing Iterator.
func From[T any](iter Iterator[T]) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return iter
		},
	}
}

// FromSlice creates a stream from a slice of values.
func FromSlice[T any](items []T) *Stream[T] {
	return &Stream[T]{
		create: func(_ context.Context) Iterator[T] {
			return &sliceIter[T]{items: items}
		},
	}
}

// FromFunc creates a stream from a factory that produces an Iterator.
func FromFunc[T any](fn func(ctx context.Context) Iterator[T]) *Stream[T] {
	return &Stream[T]{create: fn}
}

// --- Observation ---

// Observe registers fn to be called once for every value that passes
// through this stage. Observation does not consume the sequence; values
// continue downstream unchanged.
//
// Registering the first observer counts as consumer interest for streams
// carrying an activation hook (see OnFirstConsumer).
func (s *Stream[T]) Observe(fn func(T)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
	s.fireConsume()
}

// OnFirstConsumer registers fn to be invoked exactly once, the first time a
// consumer shows interest in this stage — either by pulling values (Iter,
// Collect, Drain, ForEach) or by registering an observer. Used to defer
// upstream work until someone is listening.
func (s *Stream[T]) OnFirstConsumer(fn func()) {
	s.mu.Lock()
	s.onConsume = fn
	s.mu.Unlock()
}

func (s *Stream[T]) fireConsume() {
	s.mu.Lock()
	fn := s.onConsume
	fired := s.consumed
	s.consumed = true
	s.mu.Unlock()
	if fn != nil && !fired {
		fn()
	}
}

func (s *Stream[T]) notify(v T) {
	s.mu.Lock()
	obs := s.observers
	s.mu.Unlock()
	for _, fn := range obs {
		fn(v)
	}
}

// iter builds the stage iterator, firing the consume hook and wrapping the
// result so observers see every value pulled through this stage.
func (s *Stream[T]) iter(ctx context.Context) Iterator[T] {
	s.fireConsume()
	return &observeIter[T]{source: s.create(ctx), stage: s}
}

type observeIter[T any] struct {
	source Iterator[T]
	stage  *Stream[T]
}

func (it *observeIter[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	it.stage.notify(val)
	return val, true, nil
}

func (it *observeIter[T]) Close() error { return it.source.Close() }

// --- Terminals ---

// Drain creates a Runnable that pulls all values and sends each to sink.
func Drain[T any](s *Stream[T], sink func(context.Context, T) error) *Runnable {
	return &Runnable{
		run: func(ctx context.Context) error {
			iter := s.iter(ctx)
			defer iter.Close()
			for {
				val, ok, err := iter.Next(ctx)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if err := sink(ctx, val); err != nil {
					return err
				}
			}
		},
	}
}

// Collect runs the stream and returns all values as a slice.
func Collect[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	iter := s.iter(ctx)
	defer iter.Close()
	var out []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, val)
	}
}

// ForEach pulls all values and calls fn for each. Convenience wrapper around Drain.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	return Drain(s, fn).Run(ctx)
}

// Iter returns the raw Iterator for this stream. The caller must Close() it.
func (s *Stream[T]) Iter(ctx context.Context) Iterator[T] {
	return s.iter(ctx)
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
