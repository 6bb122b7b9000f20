// Package atom defines the Atom 1.0 (RFC 4287) feed data model.
//
// The types here are plain value types constructed entirely by the caller
// before serialization. The serializer in the formatter package only reads
// them; nothing in this package performs I/O or holds state.
//
//   - Feed: the document root with its metadata and entries
//   - Entry: one syndicated item
//   - Person: an author or contributor (name, optional uri/email)
//   - Link: a link descriptor, self-closing in the output
//   - Text: a text construct that is plain or carries a markup type
//   - Generator: optional metadata identifying the producing software
//
// All types include JSON struct tags for the JSON output path and
// validate tags for the opt-in Validate helper.
package atom
