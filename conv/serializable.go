package conv

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kbukum/recordkit/codec"
	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/record"
	"github.com/kbukum/recordkit/stream"
)

// Serializable exposes a byte-producing view of a record stream.
//
// Producers push records via Push and finish with Close (or Fail). Stream
// attaches a codec's serialize stage and returns the byte stream; the first
// call fixes format and options, later calls return the memoized stream.
type Serializable struct {
	id       string
	settings settings
	source   *stream.Source[*record.Record]

	mu      sync.Mutex
	records *stream.Stream[*record.Record]
	out     *stream.Stream[[]byte]
}

// NewSerializable creates a Serializable with its own push source.
func NewSerializable(opts ...Option) *Serializable {
	s := newSettings(opts)
	src := stream.NewSource[*record.Record](stream.DefaultSourceBuffer)
	return &Serializable{
		id:       uuid.NewString(),
		settings: s,
		source:   src,
		records:  src.Stream(),
	}
}

// NewSerializableFrom wraps an existing record stream. Push, Close, and
// Fail are unavailable; the wrapped stream's producer drives the sequence.
func NewSerializableFrom(records *stream.Stream[*record.Record], opts ...Option) *Serializable {
	return &Serializable{
		id:       uuid.NewString(),
		settings: newSettings(opts),
		records:  records,
	}
}

// Push sends a record into the stream, blocking while the buffer is full.
func (s *Serializable) Push(ctx context.Context, rec *record.Record) error {
	if s.source == nil {
		return errors.InvalidInput("push", "serializable wraps an external stream")
	}
	return s.source.Push(ctx, rec)
}

// Close ends the record sequence normally.
func (s *Serializable) Close() {
	if s.source != nil {
		s.source.Close()
	}
}

// Fail ends the record sequence with err.
func (s *Serializable) Fail(err error) {
	if s.source != nil {
		s.source.Fail(err)
	}
}

// Records returns the current object-mode stage. Observers registered here
// see every record as it is serialized.
func (s *Serializable) Records() *stream.Stream[*record.Record] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records
}

// Map splices a transform stage downstream of the current record stage and
// returns it. A transform returning nil forwards the original record; it
// cannot drop one. Compose stages before the first Stream call.
func (s *Serializable) Map(fn func(context.Context, *record.Record) (*record.Record, error)) *stream.Stream[*record.Record] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = stream.MapKeep(s.records, fn)
	return s.records
}

// Filter splices a predicate stage downstream of the current record stage
// and returns it. Records failing the predicate are dropped.
func (s *Serializable) Filter(fn func(*record.Record) bool) *stream.Stream[*record.Record] {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = stream.Filter(s.records, fn)
	return s.records
}

// Stream resolves format (default csv) and returns the serialized byte
// stream. The first successful call builds and memoizes the conversion
// stream; subsequent calls return it unchanged regardless of arguments.
// Unknown formats and byte-mode codecs fail synchronously without
// constructing anything.
func (s *Serializable) Stream(format string, opts codec.Options) (*stream.Stream[[]byte], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.out != nil {
		return s.out, nil
	}

	if format == "" {
		format = DefaultFormat
	}
	c, err := s.settings.registry.Lookup(format)
	if err != nil {
		return nil, err
	}
	rc, ok := c.(codec.RecordCodec)
	if !ok {
		return nil, errors.ModeMismatch(format, string(codec.ModeRecord), string(c.Mode()))
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	records := s.records
	s.out = stream.FromFunc(func(ctx context.Context) stream.Iterator[[]byte] {
		// A fresh encoder per run; header state is never reused.
		return &encodeIter{
			source: records.Iter(ctx),
			enc:    rc.NewEncoder(opts),
		}
	})

	s.settings.log.Debug("serialize stream built", logger.Fields(
		logger.FieldRunID, s.id,
		logger.FieldFormat, format,
	))
	return s.out, nil
}

// encodeIter pulls records, rendering each through the encoder, and emits
// the encoder's trailing bytes once the source ends.
type encodeIter struct {
	source  stream.Iterator[*record.Record]
	enc     codec.RecordEncoder
	flushed bool
}

func (it *encodeIter) Next(ctx context.Context) ([]byte, bool, error) {
	if it.flushed {
		return nil, false, nil
	}
	for {
		rec, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.flushed = true
			tail, err := it.enc.Flush()
			if err != nil {
				return nil, false, err
			}
			if len(tail) > 0 {
				return tail, true, nil
			}
			return nil, false, nil
		}
		chunk, err := it.enc.Encode(rec)
		if err != nil {
			return nil, false, err
		}
		if len(chunk) > 0 {
			return chunk, true, nil
		}
	}
}

func (it *encodeIter) Close() error { return it.source.Close() }
