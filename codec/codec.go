package codec

import "github.com/kbukum/recordkit/record"

// Mode declares what a codec's parse stage emits and what its serialize
// stage consumes.
type Mode string

const (
	// ModeRecord marks codecs whose parse stage emits records and whose
	// serialize stage consumes records.
	ModeRecord Mode = "record"
	// ModeBytes marks codecs that pass opaque byte payloads through without
	// interpreting them as records.
	ModeBytes Mode = "bytes"
)

// Codec is a named conversion capability between records and bytes.
// Implementations also satisfy RecordCodec or ByteCodec depending on Mode.
type Codec interface {
	// Name returns the format identifier used for registry lookup.
	Name() string
	// Mode returns the declared codec mode.
	Mode() Mode
}

// RecordEncoder serializes a sequence of records into byte chunks.
// Encoders are stateful for exactly one serialization run: header state and
// any other per-run bookkeeping must never be shared across runs.
type RecordEncoder interface {
	// Encode renders one record. The returned chunk may also carry
	// preceding framing such as a header line.
	Encode(rec *record.Record) ([]byte, error)
	// Flush emits any trailing bytes at end of input. May return nil.
	Flush() ([]byte, error)
}

// RecordDecoder deserializes byte chunks into records.
// Write accumulates input; Close decodes and returns all records once the
// input is complete.
type RecordDecoder interface {
	Write(chunk []byte) error
	Close() ([]*record.Record, error)
}

// RecordCodec is a codec operating in ModeRecord.
type RecordCodec interface {
	Codec
	// NewEncoder returns a fresh encoder holding state for one run.
	NewEncoder(opts Options) RecordEncoder
	// NewDecoder returns a fresh decoder holding state for one run.
	NewDecoder(opts Options) RecordDecoder
}

// ByteTransformer forwards byte chunks, possibly rewriting them.
// Identity for passthrough codecs.
type ByteTransformer interface {
	Transform(chunk []byte) ([]byte, error)
	// Flush emits any trailing bytes at end of input. May return nil.
	Flush() ([]byte, error)
}

// ByteCodec is a codec operating in ModeBytes.
type ByteCodec interface {
	Codec
	NewByteEncoder(opts Options) ByteTransformer
	NewByteDecoder(opts Options) ByteTransformer
}
