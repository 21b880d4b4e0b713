package project

import "strings"

// segKind distinguishes literal text from field references.
type segKind int

const (
	segLiteral segKind = iota
	segRef
)

// segment is one token of a parsed template string: a run of literal text
// or a ${name} field reference.
type segment struct {
	kind segKind
	text string
}

// parseTemplate tokenizes s into literal and ${name} reference segments.
// An unterminated or empty placeholder is kept as literal text.
func parseTemplate(s string) []segment {
	var segs []segment
	for len(s) > 0 {
		start := strings.Index(s, "${")
		if start < 0 {
			segs = append(segs, segment{kind: segLiteral, text: s})
			break
		}
		end := strings.Index(s[start+2:], "}")
		if end < 0 {
			segs = append(segs, segment{kind: segLiteral, text: s})
			break
		}
		name := s[start+2 : start+2+end]
		if name == "" {
			// "${}" carries no reference; emit it verbatim.
			segs = append(segs, segment{kind: segLiteral, text: s[:start+3+end]})
			s = s[start+3+end:]
			continue
		}
		if start > 0 {
			segs = append(segs, segment{kind: segLiteral, text: s[:start]})
		}
		segs = append(segs, segment{kind: segRef, text: name})
		s = s[start+3+end:]
	}
	return segs
}

// wholeRef returns the referenced field name when the template string is a
// single bare placeholder, e.g. "${Score}".
func wholeRef(segs []segment) (string, bool) {
	if len(segs) == 1 && segs[0].kind == segRef {
		return segs[0].text, true
	}
	return "", false
}

// hasRef reports whether any segment is a field reference.
func hasRef(segs []segment) bool {
	for _, seg := range segs {
		if seg.kind == segRef {
			return true
		}
	}
	return false
}
