// Package parser discovers annotated source files and extracts their
// documentation blocks into the page map and category index the builder
// renders from.
//
// A documentation block is a comment of the form
//
//	/*doc
//	---
//	title: Buttons
//	name: button
//	category: Base CSS
//	---
//	Markdown describing the component...
//	*/
//
// HTML and markdown sources may use `<!--doc ... -->` instead. A block with
// a `category` starts (or extends) that category's page; a block with a
// `parent` is appended beneath its parent block with demoted headings.
package parser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"gopkg.in/yaml.v3"

	"swatch/internal/config"
	"swatch/internal/diag"
	"swatch/internal/doc"
	"swatch/internal/util"
)

var defaultExtensions = map[string]struct{}{
	".css": {}, ".scss": {}, ".sass": {}, ".less": {}, ".styl": {},
	".js": {}, ".ts": {},
	".md": {}, ".markdown": {},
	".html": {},
}

// templateExtensions mark whole-file raw template pages rather than sources
// to scan for doc comments.
var templateExtensions = map[string]struct{}{
	".erb": {}, ".tmpl": {},
}

var skipDirs = map[string]struct{}{
	".git":         {},
	"node_modules": {},
}

// Both forms tolerate trailing whitespace and CRLF line endings after the
// opening marker.
var (
	blockRe     = regexp.MustCompile(`(?s)/\*doc[ \t]*\r?\n(.*?)\*/`)
	htmlBlockRe = regexp.MustCompile(`(?s)<!--doc[ \t]*\r?\n(.*?)-->`)
)

// blockHeader is the YAML header inside a doc comment.
type blockHeader struct {
	Title    string            `yaml:"title"`
	Name     string            `yaml:"name"`
	Category config.StringList `yaml:"category"`
	Parent   string            `yaml:"parent"`
}

type rawBlock struct {
	header   blockHeader
	markdown string
	file     string
}

// Parse walks the configured source directories and produces the page map
// and category index. Every returned page key is a non-empty output file
// name.
func Parse(cfg *config.BuildConfig, sink *diag.Sink) (doc.PageMap, *doc.CategoryIndex, error) {
	exts := make(map[string]struct{}, len(defaultExtensions)+len(cfg.CustomExtensions))
	for ext := range defaultExtensions {
		exts[ext] = struct{}{}
	}
	for _, ext := range cfg.CustomExtensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[ext] = struct{}{}
	}

	var ignorer *ignore.GitIgnore
	if len(cfg.IgnorePaths) > 0 {
		ignorer = ignore.CompileIgnoreLines(cfg.IgnorePaths...)
	}

	pages := doc.PageMap{}
	categories := &doc.CategoryIndex{}
	var blocks []rawBlock

	for _, root := range cfg.Source {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			name := d.Name()
			if d.IsDir() {
				if path == root {
					return nil
				}
				if _, skip := skipDirs[name]; skip || strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.HasPrefix(name, ".") {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			if ignorer != nil && ignorer.MatchesPath(rel) {
				return nil
			}

			ext := filepath.Ext(name)
			if _, ok := templateExtensions[ext]; ok {
				return addTemplatePage(pages, path, name, ext)
			}
			if _, ok := exts[ext]; !ok {
				return nil
			}

			fileBlocks, err := extractBlocks(path)
			if err != nil {
				return err
			}
			blocks = append(blocks, fileBlocks...)
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse source directory %s: %w", root, err)
		}
	}

	if err := placeBlocks(blocks, pages, categories, cfg, sink); err != nil {
		return nil, nil, err
	}
	return pages, categories, nil
}

// addTemplatePage keys a raw template page by its base name with an .html
// extension ("widgets.html.erb" and "widgets.erb" both become "widgets.html").
func addTemplatePage(pages doc.PageMap, path, name, ext string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	fileName := strings.TrimSuffix(name, ext)
	if !strings.HasSuffix(fileName, ".html") {
		fileName += ".html"
	}
	pages[fileName] = &doc.Page{Kind: doc.TemplatePage, Template: string(content)}
	return nil
}

func extractBlocks(path string) ([]rawBlock, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	re := blockRe
	switch filepath.Ext(path) {
	case ".html", ".md", ".markdown":
		re = htmlBlockRe
	}

	var blocks []rawBlock
	for _, match := range re.FindAllSubmatch(content, -1) {
		block, err := parseBlock(string(match[1]), path)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func parseBlock(content, file string) (rawBlock, error) {
	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return rawBlock{}, fmt.Errorf("doc block in %s has no YAML header", file)
	}
	var header blockHeader
	if err := yaml.Unmarshal([]byte(parts[1]), &header); err != nil {
		return rawBlock{}, fmt.Errorf("failed to parse doc block header in %s: %w", file, err)
	}
	return rawBlock{
		header:   header,
		markdown: strings.TrimLeft(parts[2], "\r\n"),
		file:     file,
	}, nil
}

// placeBlocks assigns blocks to pages: category blocks first so parent
// blocks can find their parents regardless of file order.
func placeBlocks(blocks []rawBlock, pages doc.PageMap, categories *doc.CategoryIndex, cfg *config.BuildConfig, sink *diag.Sink) error {
	// block name → owning file, filled as category blocks are placed
	owners := make(map[string]string)

	for _, rb := range blocks {
		if len(rb.header.Category) == 0 {
			continue
		}
		for _, category := range rb.header.Category {
			fileName := fileNameFor(category, cfg.Index)
			if fileName == ".html" {
				return fmt.Errorf("category %q in %s produces an empty page name", category, rb.file)
			}
			page, ok := pages[fileName]
			if !ok || page.Kind != doc.MarkdownPage {
				page = &doc.Page{Kind: doc.MarkdownPage, Blocks: []doc.Block{}}
				pages[fileName] = page
			}
			page.AddBlock(doc.Block{
				Name:     rb.header.Name,
				Title:    rb.header.Title,
				Markdown: rb.markdown,
				Depth:    0,
			})
			categories.Add(category, fileName)
			addSectionEntry(categories, cfg.NavLevel, rb.header, fileName)
			if rb.header.Name != "" {
				if _, taken := owners[rb.header.Name]; !taken {
					owners[rb.header.Name] = fileName
				}
			}
		}
	}

	// Parent blocks attach after all category blocks exist, in encounter
	// order (WalkDir visits lexically, so this is deterministic).
	for _, rb := range blocks {
		if len(rb.header.Category) > 0 || rb.header.Parent == "" {
			continue
		}
		fileName, ok := owners[rb.header.Parent]
		if !ok {
			sink.Warnf("doc block %q in %s references unknown parent %q, skipping",
				rb.header.Name, rb.file, rb.header.Parent)
			continue
		}
		pages[fileName].AddBlock(doc.Block{
			Name:     rb.header.Name,
			Title:    rb.header.Title,
			Parent:   rb.header.Parent,
			Markdown: rb.markdown,
			Depth:    1,
		})
		addSectionEntry(categories, cfg.NavLevel, rb.header, fileName)
		if rb.header.Name != "" {
			if _, taken := owners[rb.header.Name]; !taken {
				owners[rb.header.Name] = fileName
			}
		}
	}

	for _, rb := range blocks {
		if len(rb.header.Category) == 0 && rb.header.Parent == "" {
			sink.Warnf("doc block %q in %s has neither category nor parent, skipping",
				rb.header.Name, rb.file)
		}
	}
	return nil
}

// addSectionEntry records a per-block index entry when section-level
// navigation is configured, pointing at the block's anchor on its page.
// Templates iterating the category index then see one entry per section
// instead of one per page.
func addSectionEntry(categories *doc.CategoryIndex, navLevel string, header blockHeader, fileName string) {
	if navLevel != "section" || header.Name == "" {
		return
	}
	label := header.Title
	if label == "" {
		label = header.Name
	}
	categories.Add(label, fileName+"#"+header.Name)
}

// fileNameFor maps a category label to its output file. The configured index
// category renders as index.html.
func fileNameFor(category, index string) string {
	if index != "" && (category == index || util.Slug(category) == util.Slug(index)) {
		return "index.html"
	}
	return util.Slug(category) + ".html"
}
