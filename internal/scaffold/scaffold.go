// Package scaffold creates the initial styleguide project files.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the config file Setup creates and the CLI loads by
// default.
const ConfigFileName = "swatch.yml"

// Setup scaffolds a styleguide project in dir: the config file, a sample
// annotated stylesheet and the documentation asset partials. Files that
// already exist are left untouched, so re-running Setup never clobbers an
// edited config.
func Setup(dir string) error {
	dirs := []string{"ui", "doc_assets", "docs"}
	for _, sub := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", sub, err)
		}
	}

	files := map[string]string{
		ConfigFileName:            configContent,
		"ui/screen.css":           sampleCSSContent,
		"doc_assets/_header.html": headerContent,
		"doc_assets/_footer.html": footerContent,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", name, err)
		}
	}
	return nil
}

const configContent = `# Directories (or a list of them) to scan for annotated source files.
source: ui

# Where the generated styleguide is written.
destination: docs

# Static files copied alongside the generated pages. Underscore-prefixed
# entries (like _header.html) are templates, not copied assets.
documentation_assets: doc_assets

# Externally built directories to copy into the destination as-is.
dependencies: []

# Category whose page should also be written as index.html.
# index: Basics
`

const sampleCSSContent = `/*doc
---
title: Buttons
name: button
category: Basics
---
Button styles that can be applied to any element.

` + "```html_example" + `
<button class="btn">Click me</button>
` + "```" + `
*/
.btn {
  display: inline-block;
  padding: 0.5em 1em;
}
`

const headerContent = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Title }} styleguide</title>
  <link rel="stylesheet" href="styles.css">
</head>
<body>
  <header>
    <h1>{{ .Title }}</h1>
    <nav>
    {{ range .Categories.Entries }}
      <a href="{{ .FileName }}">{{ .Label }}</a>
    {{ end }}
    </nav>
  </header>
  <main>
`

const footerContent = `  </main>
  <footer>generated by swatch</footer>
</body>
</html>
`
