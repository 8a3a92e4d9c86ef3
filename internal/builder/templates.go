package builder

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"swatch/internal/diag"
)

// LoadHeaderFooter locates and compiles the header and footer templates in
// the documentation assets directory. The underscore-prefixed name is
// preferred (those files are excluded from the asset copy); the bare name is
// a fallback. A missing template is a warning and comes back nil; a template
// that fails to compile is a hard error, since it would invalidate every
// page.
func LoadHeaderFooter(assetsDir string, sink *diag.Sink) (header, footer *template.Template, err error) {
	header, err = loadPartial(assetsDir, "header")
	if err != nil {
		return nil, nil, err
	}
	if header == nil {
		sink.Warnf("No header found in the documentation assets. Without a header your styleguide will not have any styling applied to it.")
	}

	footer, err = loadPartial(assetsDir, "footer")
	if err != nil {
		return nil, nil, err
	}
	if footer == nil {
		sink.Warnf("No footer found in the documentation assets.")
	}
	return header, footer, nil
}

func loadPartial(assetsDir, name string) (*template.Template, error) {
	for _, candidate := range []string{"_" + name + ".html", name + ".html"} {
		path := filepath.Join(assetsDir, candidate)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("could not read template %s: %w", path, err)
		}
		tmpl, err := template.New(name).Parse(string(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", path, err)
		}
		return tmpl, nil
	}
	return nil, nil
}
