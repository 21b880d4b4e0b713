package csv

import (
	"testing"

	"github.com/kbukum/recordkit/codec"
	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/record"
)

func encodeAll(t *testing.T, enc codec.RecordEncoder, recs ...*record.Record) string {
	t.Helper()
	var out []byte
	for _, rec := range recs {
		chunk, err := enc.Encode(rec)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, chunk...)
	}
	tail, err := enc.Flush()
	if err != nil {
		t.Fatal(err)
	}
	return string(append(out, tail...))
}

func TestCodec_Identity(t *testing.T) {
	c := New()
	if c.Name() != "csv" {
		t.Errorf("expected name csv, got %q", c.Name())
	}
	if c.Mode() != codec.ModeRecord {
		t.Errorf("expected record mode, got %q", c.Mode())
	}
}

func TestDefaultRegistration(t *testing.T) {
	c, err := codec.Lookup(FormatName)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(codec.RecordCodec); !ok {
		t.Error("registered csv codec is not a RecordCodec")
	}
}

func TestEncoder_HeaderFromFirstRecord(t *testing.T) {
	enc := New().NewEncoder(codec.Options{})
	got := encodeAll(t, enc,
		record.FromPairs("Id", "1", "Name", "A"),
		record.FromPairs("Id", "2", "Name", "B"),
	)
	want := "Id,Name\n1,A\n2,B\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_ExplicitHeaders(t *testing.T) {
	enc := New().NewEncoder(codec.Options{Headers: []string{"Name", "Id"}})
	got := encodeAll(t, enc, record.FromPairs("Id", "1", "Name", "A"))
	want := "Name,Id\nA,1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_OmitHeader(t *testing.T) {
	enc := New().NewEncoder(codec.Options{OmitHeader: true})
	got := encodeAll(t, enc, record.FromPairs("Id", "1", "Name", "A"))
	want := "1,A\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_LaterFieldsNotDiscovered(t *testing.T) {
	// The first record fixes the column set; extra fields on later records
	// are ignored, missing ones render as the null value.
	enc := New().NewEncoder(codec.Options{NullValue: "NULL"})
	got := encodeAll(t, enc,
		record.FromPairs("Id", "1", "Name", "A"),
		record.FromPairs("Id", "2", "Extra", "x"),
	)
	want := "Id,Name\n1,A\n2,NULL\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_NilAndMissingValues(t *testing.T) {
	enc := New().NewEncoder(codec.Options{})
	got := encodeAll(t, enc, record.FromPairs("Id", "1", "Name", nil))
	want := "Id,Name\n1,\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_NonStringValues(t *testing.T) {
	enc := New().NewEncoder(codec.Options{})
	got := encodeAll(t, enc, record.FromPairs("Id", "7", "Score", 42, "Active", true))
	want := "Id,Score,Active\n7,42,true\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_QuotesSpecialCharacters(t *testing.T) {
	enc := New().NewEncoder(codec.Options{})
	got := encodeAll(t, enc, record.FromPairs("Id", "1", "Name", "a,b"))
	want := "Id,Name\n1,\"a,b\"\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_CustomDelimiter(t *testing.T) {
	enc := New().NewEncoder(codec.Options{Delimiter: ";"})
	got := encodeAll(t, enc, record.FromPairs("Id", "1", "Name", "A"))
	want := "Id;Name\n1;A\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncoder_FreshStatePerEncoder(t *testing.T) {
	c := New()
	rec := record.FromPairs("Id", "1")

	first := encodeAll(t, c.NewEncoder(codec.Options{}), rec)
	second := encodeAll(t, c.NewEncoder(codec.Options{}), rec)
	if first != second {
		t.Errorf("second run differs: %q vs %q; header state leaked", first, second)
	}
}

func TestDecoder_HeaderInference(t *testing.T) {
	dec := New().NewDecoder(codec.Options{})
	if err := dec.Write([]byte("Id,Name\n1,A\n2,B\n")); err != nil {
		t.Fatal(err)
	}
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Id"); v != "1" {
		t.Errorf("record 0 Id = %v", v)
	}
	if v, _ := recs[1].Get("Name"); v != "B" {
		t.Errorf("record 1 Name = %v", v)
	}
	fields := recs[0].Fields()
	if len(fields) != 2 || fields[0] != "Id" || fields[1] != "Name" {
		t.Errorf("field order %v, want [Id Name]", fields)
	}
}

func TestDecoder_ExplicitHeaders(t *testing.T) {
	// With headers supplied, the first line is data, not a header.
	dec := New().NewDecoder(codec.Options{Headers: []string{"Id", "Name"}})
	if err := dec.Write([]byte("1,A\n2,B\n")); err != nil {
		t.Fatal(err)
	}
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Id"); v != "1" {
		t.Errorf("record 0 Id = %v", v)
	}
}

func TestDecoder_SplitChunks(t *testing.T) {
	// Chunk boundaries are arbitrary; only the complete document matters.
	dec := New().NewDecoder(codec.Options{})
	for _, chunk := range []string{"Id,Na", "me\n1", ",A\n"} {
		if err := dec.Write([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Name"); v != "A" {
		t.Errorf("Name = %v", v)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	dec := New().NewDecoder(codec.Options{})
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no records, got %d", len(recs))
	}
}

func TestDecoder_HeaderOnly(t *testing.T) {
	dec := New().NewDecoder(codec.Options{})
	dec.Write([]byte("Id,Name\n"))
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no records, got %d", len(recs))
	}
}

func TestDecoder_ShortRowsPadded(t *testing.T) {
	// Rows narrower than the header set get nil for the missing fields.
	dec := New().NewDecoder(codec.Options{Headers: []string{"Id", "Name"}})
	dec.Write([]byte("1\n"))
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if v, ok := recs[0].Get("Name"); !ok || v != nil {
		t.Errorf("expected nil padding for Name, got %v (present=%v)", v, ok)
	}
}

func TestDecoder_Malformed(t *testing.T) {
	dec := New().NewDecoder(codec.Options{})
	dec.Write([]byte("Id,Name\n\"unterminated\n"))
	_, err := dec.Close()
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	if !errors.HasCode(err, errors.ErrCodeMalformedInput) {
		t.Errorf("expected MALFORMED_INPUT, got %v", err)
	}
}

func TestDecoder_CustomDelimiter(t *testing.T) {
	dec := New().NewDecoder(codec.Options{Delimiter: ";"})
	dec.Write([]byte("Id;Name\n1;A\n"))
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if v, _ := recs[0].Get("Name"); v != "A" {
		t.Errorf("Name = %v", v)
	}
}

func TestRoundTrip(t *testing.T) {
	c := New()
	input := []*record.Record{
		record.FromPairs("Id", "1", "Name", "A"),
		record.FromPairs("Id", "2", "Name", "B"),
	}

	enc := c.NewEncoder(codec.Options{})
	doc := encodeAll(t, enc, input...)

	dec := c.NewDecoder(codec.Options{})
	dec.Write([]byte(doc))
	recs, err := dec.Close()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != len(input) {
		t.Fatalf("expected %d records, got %d", len(input), len(recs))
	}
	for i, rec := range recs {
		if !rec.Equal(input[i]) {
			t.Errorf("record %d: got %v, want %v", i, rec, input[i])
		}
	}
}
