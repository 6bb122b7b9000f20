package atomfeed

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/theoremus-urban-solutions/atomfeed/config"
	"github.com/theoremus-urban-solutions/atomfeed/formatter"
)

// RenderFeed renders the named feed in the requested format. An empty
// name falls back to the first configured feed.
func RenderFeed(name, format string) ([]byte, error) {
	if name == "" {
		f, ok := config.SelectFeed("")
		if !ok {
			return nil, fmt.Errorf("no feeds configured")
		}
		name = f.Name
	}
	src, ok := lookupSource(name)
	if !ok {
		return nil, fmt.Errorf("no such feed: %s", name)
	}
	fb := formatter.NewFeedBuilder()
	if format == "json" {
		return fb.BuildJSON(src.ExportFeed()), nil
	}
	return fb.BuildXML(src.ExportFeed()), nil
}

func handleFeedXML(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	buf, err := RenderFeed(name, "xml")
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("feed", "xml", err.Error()))
		return
	}
	w.Header().Set("Content-Type", "application/atom+xml; charset=utf-8")
	_, _ = w.Write(buf)
}

func handleFeedJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	name := r.URL.Query().Get("name")
	buf, err := RenderFeed(name, "json")
	if err != nil {
		w.WriteHeader(404)
		_, _ = w.Write(buildErrorPayload("feed", "json", err.Error()))
		return
	}
	_, _ = w.Write(buf)
}

func buildErrorPayload(call, format, msg string) []byte {
	b, _ := json.Marshal(map[string]string{
		"call":   call,
		"format": format,
		"error":  msg,
	})
	return b
}
