package conv

import (
	"context"

	"github.com/kbukum/recordkit/stream"
)

// Input is the writable head of a Parsable: callers write serialized bytes
// here and finish with Close. Implements io.WriteCloser.
type Input struct {
	src *stream.Source[[]byte]
}

// Write buffers one chunk. Blocks while the input buffer is full; fails
// after Close.
func (in *Input) Write(p []byte) (int, error) {
	// The caller may reuse p after Write returns.
	chunk := make([]byte, len(p))
	copy(chunk, p)
	if err := in.src.Push(context.Background(), chunk); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close marks the end of input. Idempotent.
func (in *Input) Close() error {
	in.src.Close()
	return nil
}

// Abort ends the input with err; consumers see it from their next pull.
func (in *Input) Abort(err error) {
	in.src.Fail(err)
}
