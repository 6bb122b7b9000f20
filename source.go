package atomfeed

import (
	"sync"

	"github.com/theoremus-urban-solutions/atomfeed/atom"
	"github.com/theoremus-urban-solutions/atomfeed/config"
	"github.com/theoremus-urban-solutions/atomfeed/formatter"
)

var (
	sourcesMu sync.RWMutex
	sources   = map[string]formatter.FeedSource{}
)

// RegisterSource makes a feed source available under a name. Sources are
// registered before the server starts; later registrations replace earlier
// ones.
func RegisterSource(name string, src formatter.FeedSource) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	sources[name] = src
}

// RegisterConfiguredFeeds wires every feed defined in the loaded config
// as a static source.
func RegisterConfiguredFeeds() {
	for _, f := range config.Config.Feeds {
		RegisterSource(f.Name, &staticSource{cfg: f})
	}
}

func lookupSource(name string) (formatter.FeedSource, bool) {
	sourcesMu.RLock()
	defer sourcesMu.RUnlock()
	src, ok := sources[name]
	return src, ok
}

func sourceCount() int {
	sourcesMu.RLock()
	defer sourcesMu.RUnlock()
	return len(sources)
}

// staticSource exports a feed model built from a config-defined feed.
type staticSource struct {
	cfg config.Feed
}

func (s *staticSource) ExportFeed() *atom.Feed {
	f := &atom.Feed{
		ID:       s.cfg.ID,
		Title:    textValue(s.cfg.Title, s.cfg.TitleType),
		Subtitle: s.cfg.Subtitle,
		Rights:   s.cfg.Rights,
		Updated:  s.cfg.Updated,
		Author:   persons(s.cfg.Author),
		Links:    links(s.cfg.Links),
	}
	if g := s.cfg.Generator; g != nil {
		f.Generator = &atom.Generator{Name: g.Name, URI: g.URI, Version: g.Version}
	}
	for _, e := range s.cfg.Entries {
		entry := atom.Entry{
			ID:          e.ID,
			Title:       textValue(e.Title, e.TitleType),
			Updated:     e.Updated,
			Published:   e.Published,
			Links:       links(e.Links),
			Author:      persons(e.Author),
			Contributor: persons(e.Contributor),
			Rights:      textValue(e.Rights, e.RightsType),
			Content:     textValue(e.Content, e.ContentType),
			Summary:     textValue(e.Summary, e.SummaryType),
		}
		f.Entries = append(f.Entries, entry)
	}
	return f
}

func textValue(body, typ string) atom.Text {
	if body == "" {
		return atom.Text{}
	}
	if typ == "" {
		return atom.Plain(body)
	}
	return atom.Markup(body, atom.TextType(typ))
}

func persons(in []config.PersonConfig) []atom.Person {
	var out []atom.Person
	for _, p := range in {
		out = append(out, atom.Person{Name: p.Name, URI: p.URI, Email: p.Email})
	}
	return out
}

func links(in []config.LinkConfig) []atom.Link {
	var out []atom.Link
	for _, l := range in {
		if l.Rel == "" && l.Type == "" {
			out = append(out, atom.NewLink(l.Href))
			continue
		}
		out = append(out, atom.Link{Href: l.Href, Rel: l.Rel, Type: l.Type})
	}
	return out
}
