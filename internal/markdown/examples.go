package markdown

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	gmutil "github.com/yuin/goldmark/util"
)

const exampleSuffix = "_example"

// ExampleRenderer turns fenced code blocks tagged `<lang>_example` into a
// live demo plus the escaped source. Per-language override templates can
// replace the built-in markup.
type ExampleRenderer struct {
	templates map[string]*template.Template
}

type exampleData struct {
	Language string
	Code     string
	Escaped  string
}

// LoadExampleRenderer loads override templates from dir. Each file's base
// name (extension stripped) must match a fence info string, e.g.
// `html_example.html`. An empty or missing dir yields the built-in renderer;
// a template that fails to parse is a hard error since it would poison every
// page using that example language.
func LoadExampleRenderer(dir string) (*ExampleRenderer, error) {
	er := &ExampleRenderer{templates: make(map[string]*template.Template)}
	if dir == "" {
		return er, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return er, nil
		}
		return nil, fmt.Errorf("could not read code example templates in %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		tmpl, err := template.New(name).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse code example template %s: %w", path, err)
		}
		er.templates[name] = tmpl
	}
	return er, nil
}

// Supports reports whether info names an example language.
func (er *ExampleRenderer) Supports(info string) bool {
	return strings.HasSuffix(info, exampleSuffix) && len(info) > len(exampleSuffix)
}

// Render produces the example HTML for a fence info string and its code.
func (er *ExampleRenderer) Render(info, code string) (string, error) {
	lang := strings.TrimSuffix(info, exampleSuffix)
	data := exampleData{
		Language: lang,
		Code:     code,
		Escaped:  stdhtml.EscapeString(code),
	}

	if tmpl, ok := er.templates[info]; ok {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", fmt.Errorf("failed to render code example template %s: %w", info, err)
		}
		return buf.String(), nil
	}

	switch lang {
	case "html":
		return fmt.Sprintf(
			"<div class=\"codeExample\">\n<div class=\"exampleOutput\">\n%s</div>\n<div class=\"codeBlock\"><pre><code class=\"language-html\">%s</code></pre></div>\n</div>\n",
			code, data.Escaped), nil
	case "js":
		return fmt.Sprintf(
			"<div class=\"codeExample jsExample\">\n<div class=\"codeBlock\"><pre><code class=\"language-js\">%s</code></pre></div>\n</div>\n<script>%s</script>\n",
			data.Escaped, code), nil
	default:
		return fmt.Sprintf(
			"<div class=\"codeExample\">\n<div class=\"codeBlock\"><pre><code class=\"language-%s\">%s</code></pre></div>\n</div>\n",
			lang, data.Escaped), nil
	}
}

// exampleNodeRenderer intercepts fenced code blocks. Example languages go
// through the ExampleRenderer; everything else gets the standard
// pre/code rendering.
type exampleNodeRenderer struct {
	examples *ExampleRenderer
}

func (r *exampleNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *exampleNodeRenderer) renderFencedCodeBlock(w gmutil.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.FencedCodeBlock)
	info := string(n.Language(source))

	if r.examples != nil && r.examples.Supports(info) {
		if !entering {
			return ast.WalkContinue, nil
		}
		out, err := r.examples.Render(info, fenceContent(n, source))
		if err != nil {
			return ast.WalkStop, err
		}
		if _, err := w.WriteString(out); err != nil {
			return ast.WalkStop, err
		}
		return ast.WalkContinue, nil
	}

	if entering {
		if info != "" {
			fmt.Fprintf(w, "<pre><code class=\"language-%s\">", stdhtml.EscapeString(info))
		} else {
			w.WriteString("<pre><code>")
		}
		w.WriteString(stdhtml.EscapeString(fenceContent(n, source)))
	} else {
		w.WriteString("</code></pre>\n")
	}
	return ast.WalkContinue, nil
}

func fenceContent(n *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}
