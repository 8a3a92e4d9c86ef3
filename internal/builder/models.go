package builder

import (
	"swatch/internal/doc"
)

// RenderContext is the data a template sees: the header/footer templates and
// raw-template pages all execute against one of these. Pages and Categories
// are the shared parsed model; templates must treat them as read-only.
type RenderContext struct {
	Title      string
	FileName   string
	Blocks     []doc.Block
	Pages      doc.PageMap
	Categories *doc.CategoryIndex
	Config     map[string]any
}
