// Package conv bridges record streams across the object/bytes boundary.
//
// Serializable exposes a byte-producing view of a record stream: records
// pushed in come out the other side serialized by a codec. Parsable is the
// inverse: serialized bytes written in come out as records.
//
// Both resolve their codec from the registry on the first Stream call and
// memoize the resulting conversion stream; later calls return the same
// stream and ignore their arguments. Requesting an unregistered format
// fails synchronously — no partial pipeline is constructed.
//
// Parsable starts inert: bytes written before anyone consumes records sit
// untouched in the input buffer. The first consumer (a pull or an observer
// registration) activates parsing, guaranteeing output is never produced
// for an unobserved stream.
//
//	p := conv.NewParsable()
//	in, _ := p.Stream("csv", codec.Options{})
//	in.Write([]byte("Id,Name\n1,A\n"))
//	in.Close()
//	recs, _ := stream.Collect(ctx, p.Records())
package conv

import (
	// Standard codecs register themselves with the default registry.
	_ "github.com/kbukum/recordkit/codec/csv"
	_ "github.com/kbukum/recordkit/codec/raw"
)
