package config

import (
	"fmt"

	"github.com/kbukum/recordkit/logger"
)

// Config contains the recordkit configuration sections. Applications embed
// it in their own config structs:
//
//	type MyConfig struct {
//	    config.Config `yaml:",inline" mapstructure:",squash"`
//	    Source        SourceConfig `yaml:"source" mapstructure:"source"`
//	}
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Stream  StreamConfig  `yaml:"stream" mapstructure:"stream"`
	CSV     CSVConfig     `yaml:"csv" mapstructure:"csv"`
}

// StreamConfig tunes stream buffer sizes.
type StreamConfig struct {
	// BufferSize is the capacity of push sources, in items.
	BufferSize int `yaml:"buffer_size" mapstructure:"buffer_size"`
	// InputBufferSize is the capacity of Parsable input buffers, in chunks.
	InputBufferSize int `yaml:"input_buffer_size" mapstructure:"input_buffer_size"`
	// OutputBufferSize is the capacity of Parsable output stages, in records.
	OutputBufferSize int `yaml:"output_buffer_size" mapstructure:"output_buffer_size"`
}

// ApplyDefaults applies default values to stream configuration.
func (c *StreamConfig) ApplyDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = 64
	}
	if c.InputBufferSize == 0 {
		c.InputBufferSize = 4096
	}
	if c.OutputBufferSize == 0 {
		c.OutputBufferSize = 8192
	}
}

// Validate validates stream configuration.
func (c *StreamConfig) Validate() error {
	if c.BufferSize < 1 {
		return fmt.Errorf("stream.buffer_size must be positive (got: %d)", c.BufferSize)
	}
	if c.InputBufferSize < 1 {
		return fmt.Errorf("stream.input_buffer_size must be positive (got: %d)", c.InputBufferSize)
	}
	if c.OutputBufferSize < 1 {
		return fmt.Errorf("stream.output_buffer_size must be positive (got: %d)", c.OutputBufferSize)
	}
	return nil
}

// CSVConfig sets defaults for CSV serialization runs.
type CSVConfig struct {
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
	NullValue string `yaml:"null_value" mapstructure:"null_value"`
}

// ApplyDefaults applies default values to CSV configuration.
func (c *CSVConfig) ApplyDefaults() {
	if c.Delimiter == "" {
		c.Delimiter = ","
	}
}

// Validate validates CSV configuration.
func (c *CSVConfig) Validate() error {
	if len([]rune(c.Delimiter)) != 1 {
		return fmt.Errorf("csv.delimiter must be a single character (got: %q)", c.Delimiter)
	}
	return nil
}

// ApplyDefaults applies default values to all sections.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	c.Stream.ApplyDefaults()
	c.CSV.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Stream.Validate(); err != nil {
		return fmt.Errorf("config.stream: %w", err)
	}
	if err := c.CSV.Validate(); err != nil {
		return fmt.Errorf("config.csv: %w", err)
	}
	return nil
}
