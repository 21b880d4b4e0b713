// Package csv implements the text CSV codec: header plus one
// delimiter-joined, newline-terminated line per record on the way out, and
// whole-document decoding on the way in.
//
// It registers itself in the default codec registry under "csv".
package csv

import (
	"github.com/kbukum/recordkit/codec"
)

// FormatName is the registry identifier of this codec.
const FormatName = "csv"

func init() {
	codec.Register(New())
}

// Codec is the CSV record codec.
type Codec struct{}

// New creates the CSV codec.
func New() *Codec { return &Codec{} }

// Name returns "csv".
func (*Codec) Name() string { return FormatName }

// Mode returns ModeRecord: parsing emits records, serializing consumes them.
func (*Codec) Mode() codec.Mode { return codec.ModeRecord }

// NewEncoder returns a fresh encoder for one serialization run.
// Header state is per encoder and never shared across runs.
func (*Codec) NewEncoder(opts codec.Options) codec.RecordEncoder {
	opts.ApplyDefaults()
	return newEncoder(opts)
}

// NewDecoder returns a fresh whole-document decoder.
func (*Codec) NewDecoder(opts codec.Options) codec.RecordDecoder {
	opts.ApplyDefaults()
	return newDecoder(opts)
}
