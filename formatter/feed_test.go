package formatter

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/theoremus-urban-solutions/atomfeed/atom"
)

func TestBuildXML_MinimalFeed(t *testing.T) {
	feed := &atom.Feed{
		ID:    "id",
		Title: atom.Plain("title"),
		Entries: []atom.Entry{
			{
				Title:   atom.Plain("title"),
				Summary: atom.Markup("<p>summary</p>", atom.TextHTML),
			},
		},
	}

	expected := `<?xml version="1.0" encoding="utf-8"?>` +
		`<feed xmlns="http://www.w3.org/2005/Atom">` +
		`<id>id</id>` +
		`<title type="plain">title</title>` +
		`<entry>` +
		`<title type="plain">title</title>` +
		`<summary type="html">&lt;p&gt;summary&lt;/p&gt;</summary>` +
		`</entry>` +
		`</feed>`

	got := string(NewFeedBuilder().BuildXML(feed))
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildXML_FullFeed(t *testing.T) {
	updated := time.Date(2023, 10, 3, 8, 0, 0, 0, time.UTC)
	feed := &atom.Feed{
		ID:       "urn:example:feed",
		Title:    atom.Plain("Example"),
		Subtitle: "All the news",
		Rights:   "CC BY-SA",
		Updated:  updated,
		Author:   []atom.Person{{Name: "Bob", URI: "https://bob.example", Email: "bob@test.com"}},
		Generator: &atom.Generator{
			Name:    "atomfeedd",
			URI:     "https://example.com/atomfeedd",
			Version: "1.2",
		},
		Links: []atom.Link{
			{Href: "https://example.com/feed.xml", Rel: "self", Type: "application/atom+xml"},
			atom.NewLink("https://example.com/"),
		},
		Entries: []atom.Entry{
			{
				ID:          "urn:example:entry-1",
				Title:       atom.Plain("First"),
				Updated:     updated,
				Published:   updated.Add(-time.Hour),
				Links:       []atom.Link{atom.NewLink("https://example.com/1")},
				Author:      []atom.Person{{Name: "Ana"}},
				Contributor: []atom.Person{{Name: "Kim"}},
				Rights:      atom.Plain("CC BY-SA"),
				Content:     atom.Markup("<b>body</b>", atom.TextHTML),
				Summary:     atom.Plain("first entry"),
			},
		},
	}

	got := string(NewFeedBuilder().BuildXML(feed))

	for _, want := range []string{
		`<?xml version="1.0" encoding="utf-8"?>`,
		`<feed xmlns="http://www.w3.org/2005/Atom">`,
		`<id>urn:example:feed</id>`,
		`<subtitle>All the news</subtitle>`,
		`<rights>CC BY-SA</rights>`,
		`<updated>2023-10-03T08:00:00Z</updated>`,
		`<author><name>Bob</name><uri>https://bob.example</uri><email>bob@test.com</email></author>`,
		`<generator uri="https://example.com/atomfeedd" version="1.2">atomfeedd</generator>`,
		`<link href="https://example.com/feed.xml" rel="self" type="application/atom+xml"/>`,
		`<link href="https://example.com/" rel="alternate"/>`,
		`<entry><id>urn:example:entry-1</id>`,
		`<published>2023-10-03T07:00:00Z</published>`,
		`<contributor><name>Kim</name></contributor>`,
		`<content type="html">&lt;b&gt;body&lt;/b&gt;</content>`,
		`<summary type="plain">first entry</summary>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("document should contain %s", want)
		}
	}
}

func TestBuildXML_AuthorIdentitySuppression(t *testing.T) {
	feedAuthor := []atom.Person{{Name: "Bob"}}
	feed := &atom.Feed{
		ID:     "id",
		Title:  atom.Plain("title"),
		Author: feedAuthor,
		Entries: []atom.Entry{
			{ID: "shared", Title: atom.Plain("a"), Author: feedAuthor},
			{ID: "own", Title: atom.Plain("b"), Author: []atom.Person{{Name: "Bob"}}},
		},
	}

	got := string(NewFeedBuilder().BuildXML(feed))

	// The feed-level author plus the equal-valued-but-distinct entry author:
	// the entry sharing the feed's author list contributes none.
	if n := strings.Count(got, "<author>"); n != 2 {
		t.Errorf("expected 2 author elements, got %d in %s", n, got)
	}
	sharedEntry := got[strings.Index(got, "<entry><id>shared</id>"):strings.Index(got, "<entry><id>own</id>")]
	if strings.Contains(sharedEntry, "<author>") {
		t.Error("entry sharing the feed author list should suppress its author element")
	}
}

func TestBuildXML_EmptyFieldsSuppressed(t *testing.T) {
	feed := &atom.Feed{
		ID:      "id",
		Title:   atom.Plain("title"),
		Entries: []atom.Entry{{ID: "e1", Title: atom.Plain("t")}},
	}

	got := string(NewFeedBuilder().BuildXML(feed))

	for _, absent := range []string{
		"<subtitle", "<rights", "<updated", "<published",
		"<author", "<contributor", "<generator", "<link", "<summary", "<content",
	} {
		if strings.Contains(got, absent) {
			t.Errorf("document should not contain %s: %s", absent, got)
		}
	}
}

// Decoded shapes for the well-formedness round trip.
type xmlText struct {
	Type string `xml:"type,attr"`
	Body string `xml:",chardata"`
}

type xmlPerson struct {
	Name  string `xml:"name"`
	URI   string `xml:"uri"`
	Email string `xml:"email"`
}

type xmlLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type xmlEntry struct {
	ID      string  `xml:"id"`
	Title   xmlText `xml:"title"`
	Summary xmlText `xml:"summary"`
	Content xmlText `xml:"content"`
}

type xmlFeed struct {
	XMLName xml.Name   `xml:"feed"`
	ID      string     `xml:"id"`
	Title   xmlText    `xml:"title"`
	Author  []xmlPerson `xml:"author"`
	Link    []xmlLink  `xml:"link"`
	Entry   []xmlEntry `xml:"entry"`
}

func TestBuildXML_WellFormed(t *testing.T) {
	feed := &atom.Feed{
		ID:     "urn:example:feed",
		Title:  atom.Plain("Ex & Co <news>"),
		Author: []atom.Person{{Name: "Bob"}},
		Links:  []atom.Link{{Href: `https://example.com/?a=1&b="2"`, Rel: "self"}},
		Entries: []atom.Entry{
			{
				ID:      "urn:example:entry-1",
				Title:   atom.Plain("First"),
				Summary: atom.Markup("<p>summary</p>", atom.TextHTML),
			},
		},
	}

	data := NewFeedBuilder().BuildXML(feed)

	var decoded xmlFeed
	if err := xml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("XML is not well-formed: %v", err)
	}

	if decoded.Title.Body != "Ex & Co <news>" {
		t.Errorf("escaped title should decode back, got %q", decoded.Title.Body)
	}
	if decoded.Link[0].Href != `https://example.com/?a=1&b="2"` {
		t.Errorf("escaped href should decode back, got %q", decoded.Link[0].Href)
	}
	if len(decoded.Entry) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(decoded.Entry))
	}
	if decoded.Entry[0].Summary.Body != "<p>summary</p>" {
		t.Errorf("html summary should stay entity-encoded text, got %q", decoded.Entry[0].Summary.Body)
	}
	if decoded.Entry[0].Summary.Type != "html" {
		t.Errorf("summary type attribute should be html, got %q", decoded.Entry[0].Summary.Type)
	}
}

func TestBuildJSON(t *testing.T) {
	feed := &atom.Feed{
		ID:      "urn:example:feed",
		Title:   atom.Plain("Example"),
		Entries: []atom.Entry{{ID: "e1", Title: atom.Plain("First")}},
	}

	got := string(NewFeedBuilder().BuildJSON(feed))

	for _, want := range []string{
		`"id":"urn:example:feed"`,
		`"title":{"body":"Example","type":"plain"}`,
		`"entries"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON should contain %s, got %s", want, got)
		}
	}
}

type stubSource struct {
	feed *atom.Feed
}

func (s *stubSource) ExportFeed() *atom.Feed { return s.feed }

func TestRenderSource(t *testing.T) {
	src := &stubSource{feed: &atom.Feed{ID: "id", Title: atom.Plain("title")}}
	got := string(RenderSource(src))
	if !strings.Contains(got, `<feed xmlns="http://www.w3.org/2005/Atom">`) {
		t.Errorf("rendered source should be an Atom document, got %s", got)
	}
	if !strings.Contains(got, "<id>id</id>") {
		t.Errorf("rendered source should carry the exported model, got %s", got)
	}
}
