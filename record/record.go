package record

import (
	"fmt"
	"strconv"
)

// IDField is the identifier field carried through projections regardless of
// whether a mapping template mentions it.
const IDField = "Id"

// Record is a flat mapping from field name to scalar value that remembers
// the order in which fields were first set.
//
// The zero value is not usable; construct records with New or FromPairs.
type Record struct {
	fields []string
	values map[string]any
}

// New creates an empty record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// FromPairs creates a record from alternating field name / value arguments.
// Field order follows argument order. Panics if a name is not a string or
// the argument count is odd; intended for literals in application and test
// code.
func FromPairs(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic("record.FromPairs: odd number of arguments")
	}
	r := New()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Sprintf("record.FromPairs: field name at index %d is %T, not string", i, pairs[i]))
		}
		r.Set(name, pairs[i+1])
	}
	return r
}

// Set stores value under field. The first Set of a field fixes its position
// in the field order; later Sets overwrite the value in place.
func (r *Record) Set(field string, value any) *Record {
	if _, exists := r.values[field]; !exists {
		r.fields = append(r.fields, field)
	}
	r.values[field] = value
	return r
}

// Get returns the value of field and whether the field is present.
// A present field may still hold nil.
func (r *Record) Get(field string) (any, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Value returns the value of field, or nil when absent.
func (r *Record) Value(field string) any {
	return r.values[field]
}

// Has reports whether field is present.
func (r *Record) Has(field string) bool {
	_, ok := r.values[field]
	return ok
}

// Delete removes field from the record, preserving the relative order of the
// remaining fields.
func (r *Record) Delete(field string) {
	if _, ok := r.values[field]; !ok {
		return
	}
	delete(r.values, field)
	for i, f := range r.fields {
		if f == field {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			break
		}
	}
}

// Fields returns the field names in insertion order. The returned slice is a
// copy; mutating it does not affect the record.
func (r *Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.fields)
}

// Clone returns a shallow copy with independent field order and value map.
func (r *Record) Clone() *Record {
	c := &Record{
		fields: make([]string, len(r.fields)),
		values: make(map[string]any, len(r.values)),
	}
	copy(c.fields, r.fields)
	for k, v := range r.values {
		c.values[k] = v
	}
	return c
}

// Equal reports whether two records hold the same fields with the same
// values in the same order.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.fields) != len(other.fields) {
		return false
	}
	for i, f := range r.fields {
		if other.fields[i] != f {
			return false
		}
		if r.values[f] != other.values[f] {
			return false
		}
	}
	return true
}

// String renders the record as "{field1:value1 field2:value2}" for logs and
// test failures.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	s := "{"
	for i, f := range r.fields {
		if i > 0 {
			s += " "
		}
		s += f + ":" + StringValue(r.values[f])
	}
	return s + "}"
}

// StringValue renders a record value as text: nil becomes the empty string,
// numbers and booleans use their canonical Go formatting, strings pass
// through unchanged.
func StringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}
