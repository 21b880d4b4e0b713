package project

import (
	"reflect"
	"testing"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []segment
	}{
		{
			name: "plain literal",
			in:   "hello",
			want: []segment{{segLiteral, "hello"}},
		},
		{
			name: "whole reference",
			in:   "${Score}",
			want: []segment{{segRef, "Score"}},
		},
		{
			name: "embedded reference",
			in:   "Hello ${Name}",
			want: []segment{{segLiteral, "Hello "}, {segRef, "Name"}},
		},
		{
			name: "reference then literal",
			in:   "${Name}!",
			want: []segment{{segRef, "Name"}, {segLiteral, "!"}},
		},
		{
			name: "multiple references",
			in:   "${A}-${B}",
			want: []segment{{segRef, "A"}, {segLiteral, "-"}, {segRef, "B"}},
		},
		{
			name: "unterminated placeholder",
			in:   "Hello ${Name",
			want: []segment{{segLiteral, "Hello ${Name"}},
		},
		{
			name: "empty placeholder",
			in:   "a${}b",
			want: []segment{{segLiteral, "a${}"}, {segLiteral, "b"}},
		},
		{
			name: "empty string",
			in:   "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseTemplate(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseTemplate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWholeRef(t *testing.T) {
	if ref, ok := wholeRef(parseTemplate("${Score}")); !ok || ref != "Score" {
		t.Errorf("expected whole ref Score, got (%q, %v)", ref, ok)
	}
	if _, ok := wholeRef(parseTemplate("x${Score}")); ok {
		t.Error("prefixed placeholder is not a whole ref")
	}
	if _, ok := wholeRef(parseTemplate("plain")); ok {
		t.Error("literal is not a whole ref")
	}
}

func TestHasRef(t *testing.T) {
	if !hasRef(parseTemplate("Hello ${Name}")) {
		t.Error("expected a ref")
	}
	if hasRef(parseTemplate("Hello")) {
		t.Error("expected no ref")
	}
}
