package codec

import (
	"sort"
	"sync"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/logger"
)

// Registry maps format identifiers to codecs. The zero value is not usable;
// construct with NewRegistry.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds c under its declared name, replacing any previous codec
// registered under the same name.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	r.codecs[c.Name()] = c
	r.mu.Unlock()
	logger.WithComponent("codec").Debug("codec registered", map[string]interface{}{
		"format": c.Name(),
		"mode":   string(c.Mode()),
	})
}

// Lookup returns the codec registered under format, or an
// UNSUPPORTED_FORMAT error.
func (r *Registry) Lookup(format string) (Codec, error) {
	r.mu.RLock()
	c, ok := r.codecs[format]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.UnsupportedFormat(format)
	}
	return c, nil
}

// Formats returns the registered format identifiers, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// --- Default registry ---

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that codec packages register
// into from their init functions.
func Default() *Registry { return defaultRegistry }

// Register adds c to the default registry.
func Register(c Codec) { defaultRegistry.Register(c) }

// Lookup resolves format against the default registry.
func Lookup(format string) (Codec, error) { return defaultRegistry.Lookup(format) }

// Formats lists the formats in the default registry.
func Formats() []string { return defaultRegistry.Formats() }
