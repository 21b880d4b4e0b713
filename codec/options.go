package codec

import "github.com/kbukum/recordkit/validation"

// DefaultDelimiter is the field delimiter used when Options.Delimiter is empty.
const DefaultDelimiter = ","

// Options configures a single serialize or parse run. Codecs ignore fields
// that do not apply to them.
type Options struct {
	// Headers fixes the serialized field order. When empty, record codecs
	// infer headers from the first record's own field order.
	Headers []string `json:"headers"`
	// OmitHeader suppresses the header line on serialization.
	OmitHeader bool `json:"omit_header"`
	// Delimiter is the field separator. Must be a single character.
	Delimiter string `json:"delimiter" validate:"omitempty,len=1"`
	// NullValue is the rendering of missing or nil fields on serialization.
	NullValue string `json:"null_value"`
}

// ApplyDefaults fills unset options.
func (o *Options) ApplyDefaults() {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
}

// Validate checks the options via struct tags.
func (o *Options) Validate() error {
	return validation.Validate(o)
}

// DelimiterRune returns the delimiter as a rune, defaulting to ','.
func (o *Options) DelimiterRune() rune {
	if o.Delimiter == "" {
		return ','
	}
	return []rune(o.Delimiter)[0]
}
