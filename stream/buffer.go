package stream

import "context"

// Buffer adds a buffered channel between stream stages.
// This decouples the production rate from the consumption rate; a large
// capacity absorbs bursty producers such as a whole-document decode.
func Buffer[T any](s *Stream[T], size int) *Stream[T] {
	if size <= 0 {
		size = 1
	}
	return &Stream[T]{
		create: func(ctx context.Context) Iterator[T] {
			source := s.iter(ctx)
			bufCtx, cancel := context.WithCancel(ctx)
			ch := make(chan result[T], size)

			go func() {
				defer close(ch)
				for {
					val, ok, err := source.Next(bufCtx)
					if err != nil {
						select {
						case ch <- result[T]{err: err}:
						case <-bufCtx.Done():
						}
						return
					}
					if !ok {
						return
					}
					select {
					case ch <- result[T]{val: val, ok: true}:
					case <-bufCtx.Done():
						return
					}
				}
			}()

			return &channelIter[T]{
				ch: ch,
				closer: func() error {
					cancel()
					return source.Close()
				},
			}
		},
	}
}
