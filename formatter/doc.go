// Package formatter serializes an atom.Feed model to output documents.
//
// This package is organized into:
// - xml.go: Atom 1.0 XML serialization with proper escaping
// - json.go: JSON serialization
// - source.go: the FeedSource capability and top-level render entry point
//
// XML serialization is done manually for precise control over attribute
// ordering, single-pass escaping and empty-element suppression. The
// serializer is a pure function over the model: it reads the feed, writes
// nothing back, and is safe to call concurrently on independent inputs.
package formatter
