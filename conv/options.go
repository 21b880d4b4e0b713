package conv

import (
	"github.com/kbukum/recordkit/codec"
	"github.com/kbukum/recordkit/logger"
)

// DefaultFormat is the codec used when Stream is called with an empty
// format identifier.
const DefaultFormat = "csv"

// DefaultInputBuffer is the chunk capacity of a Parsable's input buffer.
// Sized generously so a whole serialized document can be written before a
// consumer activates parsing.
const DefaultInputBuffer = 4096

// DefaultOutputBuffer is the record capacity of a Parsable's output stage.
// A whole-document decode produces all records in one burst; the buffer
// absorbs it.
const DefaultOutputBuffer = 8192

type settings struct {
	registry     *codec.Registry
	inputBuffer  int
	outputBuffer int
	log          *logger.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		registry:     codec.Default(),
		inputBuffer:  DefaultInputBuffer,
		outputBuffer: DefaultOutputBuffer,
		log:          logger.WithComponent("conv"),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option customizes a Serializable or Parsable.
type Option func(*settings)

// WithRegistry resolves codecs against a custom registry instead of the
// process-wide default.
func WithRegistry(r *codec.Registry) Option {
	return func(s *settings) { s.registry = r }
}

// WithInputBuffer sets the Parsable input buffer capacity, in chunks.
func WithInputBuffer(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.inputBuffer = size
		}
	}
}

// WithOutputBuffer sets the Parsable output stage capacity, in records.
func WithOutputBuffer(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.outputBuffer = size
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.log = log
		}
	}
}
