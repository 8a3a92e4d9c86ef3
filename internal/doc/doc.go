// Package doc holds the parsed documentation model shared by the parser,
// the link resolver and the builder. The parser produces it once per build;
// everything downstream treats it as read-only.
package doc

import "sort"

// Block is one documented component extracted from a source comment.
type Block struct {
	Name     string
	Title    string
	Parent   string
	Markdown string
	// Depth is the nesting level within the page: 0 for a category block,
	// 1 for a block attached under a parent. It drives heading demotion.
	Depth int
}

type PageKind int

const (
	// MarkdownPage renders its blocks through the markdown pipeline and is
	// wrapped in the header/footer templates.
	MarkdownPage PageKind = iota
	// TemplatePage is raw template source rendered verbatim, unwrapped.
	TemplatePage
)

// Page is a tagged variant: exactly one of Blocks or Template is meaningful,
// selected by Kind. A MarkdownPage with zero blocks is valid and renders
// with an empty title.
type Page struct {
	Kind     PageKind
	Blocks   []Block
	Template string
}

// AddBlock appends a block, preserving source order.
func (p *Page) AddBlock(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// PageMap maps output file names (extension included) to pages.
type PageMap map[string]*Page

// SortedFileNames returns the page keys in sorted order so builds are
// deterministic regardless of map iteration.
func (pm PageMap) SortedFileNames() []string {
	names := make([]string, 0, len(pm))
	for name := range pm {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CategoryEntry associates one category label with the file it renders into.
type CategoryEntry struct {
	Label    string
	FileName string
}

// CategoryIndex is the ordered category → file association. Multiple labels
// may map to the same file; reverse lookup returns the first match.
type CategoryIndex struct {
	Entries []CategoryEntry
}

// Add records a label/file association once; duplicate pairs are ignored.
func (ci *CategoryIndex) Add(label, fileName string) {
	for _, e := range ci.Entries {
		if e.Label == label && e.FileName == fileName {
			return
		}
	}
	ci.Entries = append(ci.Entries, CategoryEntry{Label: label, FileName: fileName})
}

// FileFor returns the file a category label maps to.
func (ci *CategoryIndex) FileFor(label string) (string, bool) {
	for _, e := range ci.Entries {
		if e.Label == label {
			return e.FileName, true
		}
	}
	return "", false
}

// LabelFor returns the first category label owning fileName. It is used to
// derive page titles.
func (ci *CategoryIndex) LabelFor(fileName string) (string, bool) {
	for _, e := range ci.Entries {
		if e.FileName == fileName {
			return e.Label, true
		}
	}
	return "", false
}
