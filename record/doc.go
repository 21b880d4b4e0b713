// Package record defines the flat field-to-value record that flows through
// recordkit pipelines.
//
// A Record maps field names to scalar values (string, number, boolean) or
// nil. Field insertion order is preserved so that order-sensitive consumers
// (such as the CSV encoder's header inference) behave deterministically.
//
// # Usage
//
//	rec := record.New()
//	rec.Set("Id", "001")
//	rec.Set("Name", "Acme")
//	rec.Fields() // ["Id", "Name"]
package record
