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

// Parsable exposes a byte-consuming view that materializes into a record
// stream, with deferred start.
//
// Stream attaches a codec's parse stage and returns the writable input.
// Wiring depends on the codec's declared mode: record codecs feed a
// buffered record stage reachable via Records; byte codecs pass chunks
// through to Bytes without interpreting them.
//
// The pipeline is built inert. Bytes written before activation accumulate
// in the input buffer; the first consumer of the output stage (a pull or an
// observer registration) activates parsing. Activate may also be called
// directly.
type Parsable struct {
	id       string
	settings settings

	mu      sync.Mutex
	in      *Input
	mode    codec.Mode
	records *stream.Stream[*record.Record]
	bytes   *stream.Stream[[]byte]

	activateOnce sync.Once
	activated    bool
	format       string
}

// NewParsable creates a Parsable.
func NewParsable(opts ...Option) *Parsable {
	return &Parsable{
		id:       uuid.NewString(),
		settings: newSettings(opts),
	}
}

// Stream resolves format (default csv) and returns the writable input for
// serialized bytes. The first successful call fixes format and options and
// memoizes the wiring; subsequent calls return the same input regardless of
// arguments. Unknown formats fail synchronously without constructing
// anything.
func (p *Parsable) Stream(format string, opts codec.Options) (*Input, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.in != nil {
		return p.in, nil
	}

	if format == "" {
		format = DefaultFormat
	}
	c, err := p.settings.registry.Lookup(format)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	input := stream.NewSource[[]byte](p.settings.inputBuffer)

	switch cc := c.(type) {
	case codec.RecordCodec:
		decoded := stream.FromFunc(func(ctx context.Context) stream.Iterator[*record.Record] {
			return &decodeIter{
				source: input.Stream().Iter(ctx),
				dec:    cc.NewDecoder(opts),
			}
		})
		records := stream.Buffer(decoded, p.settings.outputBuffer)
		records.OnFirstConsumer(p.Activate)
		p.records = records
	case codec.ByteCodec:
		tr := cc.NewByteDecoder(opts)
		bytes := stream.FromFunc(func(ctx context.Context) stream.Iterator[[]byte] {
			return &byteIter{source: input.Stream().Iter(ctx), tr: tr}
		})
		bytes.OnFirstConsumer(p.Activate)
		p.bytes = bytes
	default:
		return nil, errors.InvalidInput("format", "codec implements neither record nor byte capability")
	}

	p.mode = c.Mode()
	p.format = format
	p.in = &Input{src: input}

	p.settings.log.Debug("parse stream built", logger.Fields(
		logger.FieldRunID, p.id,
		logger.FieldFormat, format,
	))
	return p.in, nil
}

// Activate marks the stream live. Idempotent; invoked automatically by the
// first consumer of Records or Bytes. Until then, written bytes are not
// drained.
func (p *Parsable) Activate() {
	p.activateOnce.Do(func() {
		p.mu.Lock()
		p.activated = true
		format := p.format
		p.mu.Unlock()
		p.settings.log.Debug("parse stream activated", logger.Fields(
			logger.FieldRunID, p.id,
			logger.FieldFormat, format,
		))
	})
}

// Activated reports whether a consumer has started the stream.
func (p *Parsable) Activated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activated
}

// Mode returns the declared mode of the bound codec, or "" before Stream.
func (p *Parsable) Mode() codec.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Records returns the record output stage. Nil before Stream is called and
// for byte-mode codecs.
func (p *Parsable) Records() *stream.Stream[*record.Record] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.records
}

// Bytes returns the byte output stage. Nil before Stream is called and for
// record-mode codecs.
func (p *Parsable) Bytes() *stream.Stream[[]byte] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bytes
}

// decodeIter accumulates the complete input, decodes it once the input
// closes, then yields the resulting records in document order.
type decodeIter struct {
	source  stream.Iterator[[]byte]
	dec     codec.RecordDecoder
	decoded bool
	records []*record.Record
	index   int
}

func (it *decodeIter) Next(ctx context.Context) (*record.Record, bool, error) {
	if !it.decoded {
		for {
			chunk, ok, err := it.source.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				break
			}
			if err := it.dec.Write(chunk); err != nil {
				return nil, false, err
			}
		}
		recs, err := it.dec.Close()
		if err != nil {
			return nil, false, err
		}
		it.records = recs
		it.decoded = true
	}
	if it.index >= len(it.records) {
		return nil, false, nil
	}
	rec := it.records[it.index]
	it.index++
	return rec, true, nil
}

func (it *decodeIter) Close() error { return it.source.Close() }

// byteIter forwards chunks through a byte transformer, emitting any
// trailing bytes once the input ends.
type byteIter struct {
	source  stream.Iterator[[]byte]
	tr      codec.ByteTransformer
	flushed bool
}

func (it *byteIter) Next(ctx context.Context) ([]byte, bool, error) {
	if it.flushed {
		return nil, false, nil
	}
	for {
		chunk, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.flushed = true
			tail, err := it.tr.Flush()
			if err != nil {
				return nil, false, err
			}
			if len(tail) > 0 {
				return tail, true, nil
			}
			return nil, false, nil
		}
		out, err := it.tr.Transform(chunk)
		if err != nil {
			return nil, false, err
		}
		if len(out) > 0 {
			return out, true, nil
		}
	}
}

func (it *byteIter) Close() error { return it.source.Close() }
