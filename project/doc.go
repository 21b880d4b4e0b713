// Package project builds record projection stages from mapping templates.
//
// A template is itself a record: each field's value is either a literal
// constant, a whole-value placeholder ("${Field}") that substitutes the
// source field's raw typed value, or a string with embedded placeholders
// ("Hello ${Name}") that substitutes stringified field values into the
// surrounding text. The source record's identifier field is always carried
// into the projection.
//
//	tmpl := record.FromPairs("Greeting", "Hello ${Name}", "Score", "${Score}")
//	out := project.Stage(records, tmpl, false)
package project
