package formatter

import (
	"encoding/json"

	"github.com/theoremus-urban-solutions/atomfeed/atom"
)

type feedBuilder struct{}

func newFeedBuilder() *feedBuilder { return &feedBuilder{} }

// NewFeedBuilder creates a new builder for serializing feed models
func NewFeedBuilder() *feedBuilder {
	return newFeedBuilder()
}

// BuildJSON serializes a feed model to JSON
func (fb *feedBuilder) BuildJSON(f *atom.Feed) []byte {
	b, _ := json.Marshal(f)
	return b
}
