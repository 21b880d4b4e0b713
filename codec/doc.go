// Package codec defines the conversion boundary between in-memory records
// and serialized bytes, and the open registry that maps format identifiers
// to codec implementations.
//
// A codec declares its mode: record codecs (such as csv) decode bytes into
// records and encode records into bytes; byte codecs (such as raw) forward
// opaque payloads unchanged. Pipeline wiring is selected by the declared
// mode, never by comparing format names.
//
// New formats are added by implementing RecordCodec or ByteCodec and calling
// Register:
//
//	codec.Register(mycodec.New())
//	c, err := codec.Lookup("myformat")
package codec
