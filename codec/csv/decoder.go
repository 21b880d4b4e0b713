package csv

import (
	"bytes"
	stdcsv "encoding/csv"

	"github.com/kbukum/recordkit/codec"
	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/record"
)

// decoder accumulates the complete document and decodes it at Close.
// This is a whole-document parse: memory use is proportional to the payload
// and no records are produced until the input ends.
type decoder struct {
	opts codec.Options
	buf  bytes.Buffer
}

func newDecoder(opts codec.Options) *decoder {
	return &decoder{opts: opts}
}

// Write appends chunk to the internal buffer.
func (d *decoder) Write(chunk []byte) error {
	_, err := d.buf.Write(chunk)
	return err
}

// Close decodes the accumulated buffer as one CSV document and returns the
// records in document order. The first line supplies field names unless
// headers were given in the options.
func (d *decoder) Close() ([]*record.Record, error) {
	if d.buf.Len() == 0 {
		return nil, nil
	}

	r := stdcsv.NewReader(&d.buf)
	r.Comma = d.opts.DelimiterRune()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.MalformedInput(FormatName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := d.opts.Headers
	if len(headers) == 0 {
		headers = rows[0]
		rows = rows[1:]
	}

	records := make([]*record.Record, 0, len(rows))
	for _, row := range rows {
		rec := record.New()
		for i, field := range headers {
			if i < len(row) {
				rec.Set(field, row[i])
			} else {
				rec.Set(field, nil)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
