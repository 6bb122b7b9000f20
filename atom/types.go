package atom

import "time"

// NS is the Atom 1.0 XML namespace.
const NS = "http://www.w3.org/2005/Atom"

// TextType discriminates how the body of a Text construct is to be read.
type TextType string

const (
	TextPlain TextType = "plain"
	TextHTML  TextType = "html"
	TextXHTML TextType = "xhtml"
)

// Text is a text construct: a body plus an optional markup type.
// The zero Type means the value was given as a bare string and reads
// as plain text.
type Text struct {
	Body string   `json:"body"`
	Type TextType `json:"type,omitempty"`
}

// Plain wraps a bare string as a plain-text construct.
func Plain(s string) Text { return Text{Body: s, Type: TextPlain} }

// Markup wraps a string carrying an explicit content type.
func Markup(s string, t TextType) Text { return Text{Body: s, Type: t} }

// ContentType resolves the effective content type; an unset type is plain.
func (t Text) ContentType() TextType {
	if t.Type == "" {
		return TextPlain
	}
	return t.Type
}

// Person is an author or contributor record.
type Person struct {
	Name  string `json:"name" validate:"required"`
	URI   string `json:"uri,omitempty" validate:"omitempty,url"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// Link is a link descriptor rendered as a self-closing element.
type Link struct {
	Href string `json:"href" validate:"required"`
	Rel  string `json:"rel,omitempty"`
	Type string `json:"type,omitempty"`
}

// NewLink is the bare-string link shorthand: the string is the href and
// the relation defaults to "alternate".
func NewLink(href string) Link { return Link{Href: href, Rel: "alternate"} }

// Generator identifies the software that produced the feed.
type Generator struct {
	Name    string `json:"name" validate:"required"`
	URI     string `json:"uri,omitempty" validate:"omitempty,url"`
	Version string `json:"version,omitempty"`
}

// Entry is one syndicated item within a feed.
type Entry struct {
	ID          string    `json:"id" validate:"required"`
	Title       Text      `json:"title"`
	Updated     time.Time `json:"updated,omitzero"`
	Published   time.Time `json:"published,omitzero"`
	Links       []Link    `json:"links,omitempty" validate:"omitempty,dive"`
	Author      []Person  `json:"author,omitempty" validate:"omitempty,dive"`
	Contributor []Person  `json:"contributor,omitempty" validate:"omitempty,dive"`
	Rights      Text      `json:"rights,omitzero"`
	Content     Text      `json:"content,omitzero"`
	Summary     Text      `json:"summary,omitzero"`
}

// Feed is the document root.
type Feed struct {
	ID        string     `json:"id" validate:"required"`
	Title     Text       `json:"title"`
	Subtitle  string     `json:"subtitle,omitempty"`
	Rights    string     `json:"rights,omitempty"`
	Updated   time.Time  `json:"updated,omitzero"`
	Author    []Person   `json:"author,omitempty" validate:"omitempty,dive"`
	Generator *Generator `json:"generator,omitempty"`
	Links     []Link     `json:"links,omitempty" validate:"omitempty,dive"`
	Entries   []Entry    `json:"entries,omitempty" validate:"omitempty,dive"`
}
