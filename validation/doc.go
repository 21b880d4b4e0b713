// Package validation provides input validation for recordkit options and
// configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type Options struct {
//	    Delimiter string `validate:"omitempty,len=1"`
//	}
//	err := validation.Validate(opts)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Check(size > 0, "buffer_size", "must be positive")
//	err := v.Error()
package validation
