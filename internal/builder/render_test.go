package builder

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"swatch/internal/config"
	"swatch/internal/diag"
	"swatch/internal/doc"
	"swatch/internal/markdown"
)

func mustTemplate(t *testing.T, src string) *template.Template {
	t.Helper()
	tmpl, err := template.New("t").Parse(src)
	require.NoError(t, err)
	return tmpl
}

func renderInto(t *testing.T, pages doc.PageMap, categories *doc.CategoryIndex, header, footer *template.Template) (string, *diag.Sink) {
	t.Helper()
	dest := t.TempDir()
	cfg := &config.BuildConfig{Destination: dest, Unsafe: true}
	sink := diag.NewSink(nil)
	md := markdown.New(markdown.Options{})
	require.NoError(t, RenderAll(pages, categories, cfg, header, footer, md, sink))
	return dest, sink
}

func readOutput(t *testing.T, dest, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dest, name))
	require.NoError(t, err)
	return string(data)
}

func TestRenderAll_MarkdownPageWrappedInHeaderAndFooter(t *testing.T) {
	pages := doc.PageMap{
		"base_css.html": {Kind: doc.MarkdownPage, Blocks: []doc.Block{
			{Name: "button", Title: "Buttons", Markdown: "Use `.btn`."},
		}},
	}
	categories := &doc.CategoryIndex{}
	categories.Add("Base CSS", "base_css.html")

	dest, _ := renderInto(t, pages, categories,
		mustTemplate(t, "<header>{{.Title}}</header>"),
		mustTemplate(t, "<footer>{{.FileName}}</footer>"))

	out := readOutput(t, dest, "base_css.html")
	require.Contains(t, out, "<header>Base CSS</header>")
	require.Contains(t, out, `<h1 id="button">Buttons</h1>`)
	require.Contains(t, out, "<code>.btn</code>")
	require.Contains(t, out, "<footer>base_css.html</footer>")
}

func TestRenderAll_TemplatePageSkipsWrapping(t *testing.T) {
	pages := doc.PageMap{
		"custom.html": {Kind: doc.TemplatePage, Template: "<p>{{.FileName}}</p>"},
	}

	dest, _ := renderInto(t, pages, &doc.CategoryIndex{},
		mustTemplate(t, "<header></header>"),
		mustTemplate(t, "<footer></footer>"))

	out := readOutput(t, dest, "custom.html")
	require.Equal(t, "<p>custom.html</p>", out)
}

func TestRenderAll_EmptyBlockSequenceRendersEmptyTitle(t *testing.T) {
	pages := doc.PageMap{
		"empty.html": {Kind: doc.MarkdownPage, Blocks: []doc.Block{}},
	}
	categories := &doc.CategoryIndex{}
	categories.Add("Should Not Win", "empty.html")

	dest, _ := renderInto(t, pages, categories,
		mustTemplate(t, "title=[{{.Title}}]"), nil)

	require.Equal(t, "title=[]", readOutput(t, dest, "empty.html"))
}

func TestRenderAll_TitleFromFirstMatchingCategory(t *testing.T) {
	pages := doc.PageMap{
		"base.html": {Kind: doc.MarkdownPage, Blocks: []doc.Block{{Title: "X", Name: "x"}}},
	}
	categories := &doc.CategoryIndex{}
	categories.Add("First", "base.html")
	categories.Add("Second", "base.html")

	dest, _ := renderInto(t, pages, categories, mustTemplate(t, "{{.Title}}"), nil)
	out := readOutput(t, dest, "base.html")
	require.Contains(t, out, "First")
}

func TestRenderAll_NoMatchingCategoryTitleIsEmpty(t *testing.T) {
	pages := doc.PageMap{
		"stray.html": {Kind: doc.MarkdownPage, Blocks: []doc.Block{{Title: "X", Name: "x"}}},
	}

	dest, _ := renderInto(t, pages, &doc.CategoryIndex{}, mustTemplate(t, "[{{.Title}}]"), nil)
	out := readOutput(t, dest, "stray.html")
	require.Contains(t, out, "[]")
}

func TestRenderAll_EmptyFileNameAborts(t *testing.T) {
	pages := doc.PageMap{
		"": {Kind: doc.MarkdownPage},
	}
	cfg := &config.BuildConfig{Destination: t.TempDir()}

	err := RenderAll(pages, &doc.CategoryIndex{}, cfg, nil, nil, markdown.New(markdown.Options{}), diag.NewSink(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "no file name")
}

func TestRenderAll_ChildBlockHeadingIsDemoted(t *testing.T) {
	pages := doc.PageMap{
		"base.html": {Kind: doc.MarkdownPage, Blocks: []doc.Block{
			{Name: "button", Title: "Buttons", Markdown: "Top."},
			{Name: "buttonPrimary", Title: "Primary", Markdown: "Child.", Parent: "button", Depth: 1},
		}},
	}

	dest, _ := renderInto(t, pages, &doc.CategoryIndex{}, nil, nil)
	out := readOutput(t, dest, "base.html")
	require.Contains(t, out, `<h1 id="button">Buttons</h1>`)
	require.Contains(t, out, `<h2 id="buttonPrimary">Primary</h2>`)
}

func TestRenderAll_BrokenTemplatePageIsFatal(t *testing.T) {
	pages := doc.PageMap{
		"bad.html": {Kind: doc.TemplatePage, Template: "{{.Nope"},
	}
	cfg := &config.BuildConfig{Destination: t.TempDir()}

	err := RenderAll(pages, &doc.CategoryIndex{}, cfg, nil, nil, markdown.New(markdown.Options{}), diag.NewSink(nil))
	require.Error(t, err)
}
