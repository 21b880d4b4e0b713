package project

import (
	"context"
	"strings"

	"github.com/kbukum/recordkit/record"
	"github.com/kbukum/recordkit/stream"
)

// Mapper builds a record transform from template tmpl.
//
// The projected record always begins with the source's identifier field.
// String template values are interpreted unless raw is true: a whole-value
// placeholder substitutes the source field's raw value preserving its type,
// embedded placeholders substitute stringified values (nil and absent
// fields render empty). Non-string template values, and every string value
// in raw mode, copy verbatim.
func Mapper(tmpl *record.Record, raw bool) func(context.Context, *record.Record) (*record.Record, error) {
	fields := tmpl.Fields()
	return func(_ context.Context, src *record.Record) (*record.Record, error) {
		out := record.New()
		out.Set(record.IDField, src.Value(record.IDField))

		for _, field := range fields {
			v := tmpl.Value(field)
			s, isString := v.(string)
			if !isString || raw {
				out.Set(field, v)
				continue
			}

			segs := parseTemplate(s)
			if ref, ok := wholeRef(segs); ok {
				out.Set(field, src.Value(ref))
				continue
			}
			if !hasRef(segs) {
				out.Set(field, s)
				continue
			}

			var sb strings.Builder
			for _, seg := range segs {
				if seg.kind == segLiteral {
					sb.WriteString(seg.text)
					continue
				}
				sb.WriteString(record.StringValue(src.Value(seg.text)))
			}
			out.Set(field, sb.String())
		}
		return out, nil
	}
}

// Stage splices a projection stage built from tmpl downstream of s and
// returns it.
func Stage(s *stream.Stream[*record.Record], tmpl *record.Record, raw bool) *stream.Stream[*record.Record] {
	return stream.MapKeep(s, Mapper(tmpl, raw))
}
