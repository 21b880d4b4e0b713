package csv

import (
	"bytes"
	stdcsv "encoding/csv"

	"github.com/kbukum/recordkit/codec"
	"github.com/kbukum/recordkit/record"
)

// encoder holds the mutable state of exactly one serialization run.
type encoder struct {
	opts codec.Options

	headers       []string
	headerWritten bool

	buf    bytes.Buffer
	writer *stdcsv.Writer
}

func newEncoder(opts codec.Options) *encoder {
	e := &encoder{opts: opts, headers: opts.Headers}
	e.writer = stdcsv.NewWriter(&e.buf)
	e.writer.Comma = opts.DelimiterRune()
	return e
}

// Encode renders rec as one CSV line. The first call resolves headers —
// from the options, or from the record's own field order — and prepends the
// header line unless suppressed. Fields introduced by later records are
// never discovered.
func (e *encoder) Encode(rec *record.Record) ([]byte, error) {
	e.buf.Reset()

	if !e.headerWritten {
		if len(e.headers) == 0 {
			e.headers = rec.Fields()
		}
		if !e.opts.OmitHeader {
			if err := e.writer.Write(e.headers); err != nil {
				return nil, err
			}
		}
		e.headerWritten = true
	}

	row := make([]string, len(e.headers))
	for i, field := range e.headers {
		v, ok := rec.Get(field)
		if !ok || v == nil {
			row[i] = e.opts.NullValue
			continue
		}
		row[i] = record.StringValue(v)
	}
	if err := e.writer.Write(row); err != nil {
		return nil, err
	}
	e.writer.Flush()
	if err := e.writer.Error(); err != nil {
		return nil, err
	}

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	return out, nil
}

// Flush has nothing to emit; CSV needs no trailing framing.
func (e *encoder) Flush() ([]byte, error) { return nil, nil }
