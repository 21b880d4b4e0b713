// Package raw implements the passthrough byte codec for opaque payloads
// that must not be interpreted as records. Both directions forward chunks
// unchanged; end of input simply ends the output.
//
// It registers itself in the default codec registry under "raw".
package raw

import "github.com/kbukum/recordkit/codec"

// FormatName is the registry identifier of this codec.
const FormatName = "raw"

func init() {
	codec.Register(New())
}

// Codec is the identity byte codec.
type Codec struct{}

// New creates the raw codec.
func New() *Codec { return &Codec{} }

// Name returns "raw".
func (*Codec) Name() string { return FormatName }

// Mode returns ModeBytes.
func (*Codec) Mode() codec.Mode { return codec.ModeBytes }

// NewByteEncoder returns the identity transformer.
func (*Codec) NewByteEncoder(codec.Options) codec.ByteTransformer { return identity{} }

// NewByteDecoder returns the identity transformer.
func (*Codec) NewByteDecoder(codec.Options) codec.ByteTransformer { return identity{} }

type identity struct{}

func (identity) Transform(chunk []byte) ([]byte, error) { return chunk, nil }

func (identity) Flush() ([]byte, error) { return nil, nil }
