package formatter

import "github.com/theoremus-urban-solutions/atomfeed/atom"

// FeedSource is the consumed boundary: anything able to export a feed
// model can be rendered.
type FeedSource interface {
	ExportFeed() *atom.Feed
}

// RenderSource renders a source's feed as an Atom 1.0 document.
func RenderSource(src FeedSource) []byte {
	return NewFeedBuilder().BuildXML(src.ExportFeed())
}
