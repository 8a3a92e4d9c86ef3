package markdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"swatch/internal/links"
)

func render(t *testing.T, opts Options, src string) string {
	t.Helper()
	out, err := New(opts).Render([]byte(src))
	require.NoError(t, err)
	return string(out)
}

func TestRender_TablesAndFencedCode(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n\n```css\n.btn { color: red; }\n```\n"
	out := render(t, Options{}, src)

	require.Contains(t, out, "<table>")
	require.Contains(t, out, "<code class=\"language-css\">")
	require.Contains(t, out, ".btn { color: red; }")
}

func TestRender_ComponentLinkRewritten(t *testing.T) {
	resolver := links.NewResolver([]links.PageEntry{
		{FileName: "base.html", ComponentNames: []string{"button"}},
	})
	out := render(t, Options{Resolver: resolver}, "See [the button](button) for details.")
	require.Contains(t, out, `href="base.html#button"`)
}

func TestRender_UnknownLinkLeftAlone(t *testing.T) {
	resolver := links.NewResolver(nil)
	out := render(t, Options{Resolver: resolver}, "See [elsewhere](https://example.com/).")
	require.Contains(t, out, `href="https://example.com/"`)
}

func TestRender_HTMLExampleEmitsDemoAndEscapedSource(t *testing.T) {
	er, err := LoadExampleRenderer("")
	require.NoError(t, err)

	out := render(t, Options{Examples: er}, "```html_example\n<button class=\"btn\">Go</button>\n```\n")
	require.Contains(t, out, "<div class=\"exampleOutput\">\n<button class=\"btn\">Go</button>")
	require.Contains(t, out, "&lt;button class=&#34;btn&#34;&gt;Go&lt;/button&gt;")
}

func TestRender_JSExampleInjectsScript(t *testing.T) {
	er, err := LoadExampleRenderer("")
	require.NoError(t, err)

	out := render(t, Options{Examples: er}, "```js_example\nconsole.log(1);\n```\n")
	require.Contains(t, out, "<script>console.log(1);\n</script>")
	require.Contains(t, out, "language-js")
}

func TestRender_NonExampleFenceUsesDefaultRendering(t *testing.T) {
	er, err := LoadExampleRenderer("")
	require.NoError(t, err)

	out := render(t, Options{Examples: er}, "```html\n<b>hi</b>\n```\n")
	require.NotContains(t, out, "exampleOutput")
	require.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestRender_SanitizeStripsScriptButKeepsAnchors(t *testing.T) {
	out := render(t, Options{Sanitize: true}, "# Buttons\n\n<script>alert(1)</script>\n")
	require.NotContains(t, out, "<script>")
	require.Contains(t, out, `id="buttons"`)
}

func TestLoadExampleRenderer_OverrideTemplate(t *testing.T) {
	dir := t.TempDir()
	tmpl := `<section class="demo-{{.Language}}">{{.Escaped}}</section>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "html_example.html"), []byte(tmpl), 0644))

	er, err := LoadExampleRenderer(dir)
	require.NoError(t, err)

	out, err := er.Render("html_example", "<i>x</i>")
	require.NoError(t, err)
	require.Equal(t, `<section class="demo-html">&lt;i&gt;x&lt;/i&gt;</section>`, out)
}

func TestLoadExampleRenderer_BadTemplateIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js_example.html"), []byte("{{.Broken"), 0644))

	_, err := LoadExampleRenderer(dir)
	require.Error(t, err)
}

func TestLoadExampleRenderer_MissingDirIsFine(t *testing.T) {
	er, err := LoadExampleRenderer(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	require.NotNil(t, er)
}
