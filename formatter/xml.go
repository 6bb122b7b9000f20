package formatter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/atomfeed/atom"
)

const xmlProlog = `<?xml version="1.0" encoding="utf-8"?>`

// attr is one rendered attribute; slices of attr keep insertion order.
type attr struct {
	name  string
	value string
}

// BuildXML serializes a feed model to an Atom 1.0 document.
func (fb *feedBuilder) BuildXML(f *atom.Feed) []byte {
	var b strings.Builder
	b.WriteString(xmlProlog)
	b.WriteString("<feed xmlns=\"" + atom.NS + "\">")
	b.WriteString(writeEntityTag("id", f.ID))
	b.WriteString(writeTextTag("title", f.Title))
	b.WriteString(writeEntityTag("subtitle", f.Subtitle))
	b.WriteString(writeEntityTag("rights", f.Rights))
	b.WriteString(writeEntityTag("updated", f.Updated))
	b.WriteString(writePersons("author", f.Author))
	b.WriteString(writeGenerator(f.Generator))
	b.WriteString(writeLinks(f.Links))
	for _, e := range f.Entries {
		writeEntryXML(&b, e, f.Author)
	}
	b.WriteString("</feed>")
	return []byte(b.String())
}

// writeEntryXML renders one entry. The feed-level author is passed so a
// shared author list is not repeated on the entry.
func writeEntryXML(b *strings.Builder, e atom.Entry, feedAuthor []atom.Person) {
	b.WriteString("<entry>")
	b.WriteString(writeEntityTag("id", e.ID))
	b.WriteString(writeTextTag("title", e.Title))
	b.WriteString(writeEntityTag("updated", e.Updated))
	b.WriteString(writeEntityTag("published", e.Published))
	b.WriteString(writeLinks(e.Links))
	if !sameAuthor(e.Author, feedAuthor) {
		b.WriteString(writePersons("author", e.Author))
	}
	b.WriteString(writePersons("contributor", e.Contributor))
	b.WriteString(writeTextTag("rights", e.Rights))
	b.WriteString(writeTextTag("content", e.Content))
	b.WriteString(writeTextTag("summary", e.Summary))
	b.WriteString("</entry>")
}

// sameAuthor reports whether two author lists are the same value, not
// merely equal: the entry-level author is suppressed only when it shares
// the feed author's backing array, which is what assigning one from the
// other produces. Independently built but equal-valued lists still render.
func sameAuthor(a, b []atom.Person) bool {
	return len(a) > 0 && len(a) == len(b) && &a[0] == &b[0]
}

// writePersons renders each person as an independent <role> element
// wrapping name, uri and email; absent fields are suppressed. Zero
// people yield the empty string.
func writePersons(role string, people []atom.Person) string {
	var b strings.Builder
	for _, p := range people {
		b.WriteString("<" + role + ">")
		b.WriteString(writeEntityTag("name", p.Name))
		b.WriteString(writeEntityTag("uri", p.URI))
		b.WriteString(writeEntityTag("email", p.Email))
		b.WriteString("</" + role + ">")
	}
	return b.String()
}

// writeLinks renders each link as a self-closing element, concatenated
// in input order.
func writeLinks(links []atom.Link) string {
	var b strings.Builder
	for _, l := range links {
		b.WriteString(writeLink(l))
	}
	return b.String()
}

// writeLink renders one self-closing <link/>. Present attributes are
// emitted in lexicographic name order; href is always present.
func writeLink(l atom.Link) string {
	attrs := []attr{{"href", l.Href}}
	if l.Rel != "" {
		attrs = append(attrs, attr{"rel", l.Rel})
	}
	if l.Type != "" {
		attrs = append(attrs, attr{"type", l.Type})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].name < attrs[j].name })
	return "<link" + writeAttributes(attrs) + "/>"
}

// writeGenerator renders the optional generator element and returns it.
func writeGenerator(g *atom.Generator) string {
	if g == nil {
		return ""
	}
	var attrs []attr
	if g.URI != "" {
		attrs = append(attrs, attr{"uri", g.URI})
	}
	if g.Version != "" {
		attrs = append(attrs, attr{"version", g.Version})
	}
	return writeEntityTag("generator", g.Name, attrs...)
}

// writeTextTag renders a Text-backed element with its resolved type
// attribute. An empty body suppresses the element, attribute included.
func writeTextTag(name string, t atom.Text) string {
	return writeTag(name, t.Body, attr{"type", string(t.ContentType())})
}

// writeEntityTag renders a named field in its canonical string form.
func writeEntityTag(name string, v any, attrs ...attr) string {
	return writeTag(name, scalarString(v), attrs...)
}

// scalarString converts a field value to its canonical textual form:
// timestamps as RFC 3339 UTC (the zero time reads as absent), strings
// as themselves, anything else via best-effort stringification.
func scalarString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// writeTag renders one element with escaped content. Empty content
// suppresses the element entirely.
func writeTag(name, content string, attrs ...attr) string {
	if content == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(name)
	b.WriteString(writeAttributes(attrs))
	b.WriteString(">")
	b.WriteString(xmlEscape(content))
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
	return b.String()
}

// writeAttributes renders attributes in slice order, a leading space
// before each pair. Values are escaped here and nowhere else, so the
// escape pass stays single.
func writeAttributes(attrs []attr) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(a.name)
		b.WriteString("=\"")
		b.WriteString(xmlEscape(a.value))
		b.WriteString("\"")
	}
	return b.String()
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
