// Package markdown renders documentation block markup to HTML fragments.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	gmutil "github.com/yuin/goldmark/util"

	"swatch/internal/links"
)

// Renderer converts markdown text into an HTML fragment.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// Options selects the pipeline collaborators.
type Options struct {
	// Resolver rewrites in-text component references; nil disables rewriting.
	Resolver *links.Resolver
	// Examples renders `<lang>_example` fenced blocks; nil leaves all fences
	// on the default code rendering.
	Examples *ExampleRenderer
	// Sanitize runs the rendered fragment through the HTML policy. Disabled
	// by `unsafe: true` in the config.
	Sanitize bool
}

// Goldmark is the default Renderer, with GFM tables, fenced code blocks,
// auto heading IDs and component link resolution.
type Goldmark struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	sanitize bool
}

func New(opts Options) *Goldmark {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				gmutil.Prioritized(&componentLinkTransformer{resolver: opts.Resolver}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
			renderer.WithNodeRenderers(
				gmutil.Prioritized(&exampleNodeRenderer{examples: opts.Examples}, 500),
			),
		),
	)

	// Styleguide fragments carry ids (anchors) and classes (code examples)
	// the stock UGC policy would strip.
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("id", "class").Globally()

	return &Goldmark{md: md, policy: policy, sanitize: opts.Sanitize}
}

func (g *Goldmark) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	if g.sanitize {
		return g.policy.SanitizeBytes(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

// componentLinkTransformer rewrites link destinations that name a documented
// component into the page#anchor URL the component renders at. Destinations
// the resolver does not know are left untouched.
type componentLinkTransformer struct {
	resolver *links.Resolver
}

func (t *componentLinkTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	if t.resolver == nil {
		return
	}
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if url, ok := t.resolver.Resolve(string(link.Destination)); ok {
			link.Destination = []byte(url)
		}
		return ast.WalkContinue, nil
	})
}
