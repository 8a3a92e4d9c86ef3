package builder

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"html/template"

	"swatch/internal/config"
	"swatch/internal/diag"
	"swatch/internal/doc"
	"swatch/internal/markdown"
)

// RenderAll writes one output file per page. Pages are independent: link
// resolution happens against the pre-built index, never against written
// files, so iteration order only affects write order.
func RenderAll(pages doc.PageMap, categories *doc.CategoryIndex, cfg *config.BuildConfig, header, footer *template.Template, md markdown.Renderer, sink *diag.Sink) error {
	for _, fileName := range pages.SortedFileNames() {
		if fileName == "" {
			return fmt.Errorf("the source parser produced a page with no file name; every page must be keyed by an output file name")
		}
		page := pages[fileName]

		ctx := RenderContext{
			Title:      pageTitle(page, fileName, categories),
			FileName:   fileName,
			Blocks:     page.Blocks,
			Pages:      pages,
			Categories: categories,
			Config:     cfg.Raw,
		}

		content, err := renderPage(page, fileName, ctx, header, footer, md)
		if err != nil {
			return err
		}
		if err := writeFile(cfg.Destination, fileName, content); err != nil {
			return err
		}
		sink.Infof("Generated %s", fileName)
	}
	return nil
}

// pageTitle derives a page's title. A markdown page whose block sequence is
// present and empty gets an empty title; otherwise the first category label
// mapped to the file wins, defaulting to empty when no category matches.
func pageTitle(page *doc.Page, fileName string, categories *doc.CategoryIndex) string {
	if page.Kind == doc.MarkdownPage && page.Blocks != nil && len(page.Blocks) == 0 {
		return ""
	}
	if label, ok := categories.LabelFor(fileName); ok {
		return label
	}
	return ""
}

func renderPage(page *doc.Page, fileName string, ctx RenderContext, header, footer *template.Template, md markdown.Renderer) ([]byte, error) {
	var out bytes.Buffer

	switch page.Kind {
	case doc.TemplatePage:
		tmpl, err := template.New(fileName).Parse(page.Template)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template page %s: %w", fileName, err)
		}
		if err := tmpl.Execute(&out, ctx); err != nil {
			return nil, fmt.Errorf("failed to render template page %s: %w", fileName, err)
		}

	case doc.MarkdownPage:
		if header != nil {
			if err := header.Execute(&out, ctx); err != nil {
				return nil, fmt.Errorf("failed to render header for %s: %w", fileName, err)
			}
		}
		for _, block := range page.Blocks {
			writeBlockHeading(&out, block)
			fragment, err := md.Render([]byte(block.Markdown))
			if err != nil {
				return nil, fmt.Errorf("failed to render block %q in %s: %w", block.Name, fileName, err)
			}
			out.Write(fragment)
		}
		if footer != nil {
			if err := footer.Execute(&out, ctx); err != nil {
				return nil, fmt.Errorf("failed to render footer for %s: %w", fileName, err)
			}
		}

	default:
		return nil, fmt.Errorf("page %s has unknown kind %d", fileName, page.Kind)
	}

	return out.Bytes(), nil
}

// writeBlockHeading emits the block's anchor heading. The id is the block
// name, which is what the link resolver points cross-page references at.
func writeBlockHeading(out *bytes.Buffer, block doc.Block) {
	if block.Title == "" {
		return
	}
	level := block.Depth + 1
	if level > 6 {
		level = 6
	}
	if block.Name != "" {
		fmt.Fprintf(out, "<h%d id=\"%s\">%s</h%d>\n", level, block.Name, stdhtml.EscapeString(block.Title), level)
	} else {
		fmt.Fprintf(out, "<h%d>%s</h%d>\n", level, stdhtml.EscapeString(block.Title), level)
	}
}
