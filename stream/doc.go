// Package stream provides the composable, pull-based stream engine that
// recordkit pipelines are built from.
//
// Streams are lazy — no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand,
// which preserves input order and gives natural backpressure without
// explicit flow control.
//
// # Operators
//
//   - Map: transform each value
//   - MapKeep: transform each value, forwarding the original when the
//     transform declines (a transform may not drop a value)
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value
//   - Concat: join streams sequentially
//   - Buffer: decouple producer/consumer with a buffered channel
//
// # Observation
//
// Every stage broadcasts each value that passes through it to observers
// registered with Observe. Observation is a side channel: it never consumes
// or reorders the main sequence.
//
// # Sources
//
// A Source is the push-mode head of a stream graph. Producers call Push,
// then Close (or Fail); the bounded buffer suspends producers when the
// consumer falls behind.
//
//	src := stream.NewSource[int](16)
//	go func() {
//	    defer src.Close()
//	    for _, n := range []int{1, 2, 3} {
//	        src.Push(ctx, n)
//	    }
//	}()
//	doubled := stream.Map(src.Stream(), func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	results, _ := stream.Collect(ctx, doubled)
package stream
