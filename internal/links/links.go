// Package links resolves component references to the page and anchor where
// the component is documented. The resolver is built once from the full page
// map, before any page is rendered, so link resolution never depends on
// write order.
package links

import "swatch/internal/doc"

// PageEntry is one page's contribution to the resolver: its output file name
// and the component names it documents.
type PageEntry struct {
	FileName       string
	ComponentNames []string
}

// Resolver maps component names to "file#anchor" URLs.
type Resolver struct {
	targets map[string]string
}

// NewResolver builds a resolver from page entries. The first page claiming a
// component name wins; later claims are ignored.
func NewResolver(entries []PageEntry) *Resolver {
	r := &Resolver{targets: make(map[string]string)}
	for _, entry := range entries {
		for _, name := range entry.ComponentNames {
			if name == "" {
				continue
			}
			if _, taken := r.targets[name]; taken {
				continue
			}
			r.targets[name] = entry.FileName + "#" + name
		}
	}
	return r
}

// FromPages builds a resolver from a parsed page map, visiting pages in
// sorted file-name order so duplicate names resolve deterministically.
func FromPages(pages doc.PageMap) *Resolver {
	entries := make([]PageEntry, 0, len(pages))
	for _, fileName := range pages.SortedFileNames() {
		page := pages[fileName]
		if page.Kind != doc.MarkdownPage {
			continue
		}
		entry := PageEntry{FileName: fileName}
		for _, b := range page.Blocks {
			entry.ComponentNames = append(entry.ComponentNames, b.Name)
		}
		entries = append(entries, entry)
	}
	return NewResolver(entries)
}

// Resolve looks up a component reference.
func (r *Resolver) Resolve(ref string) (string, bool) {
	url, ok := r.targets[ref]
	return url, ok
}
