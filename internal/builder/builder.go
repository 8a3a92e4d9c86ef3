// Package builder orchestrates a styleguide build: validate the config,
// compile the header/footer templates, parse the annotated sources, render
// every page, and materialize assets and dependencies into the destination.
//
// Failure semantics follow two tiers. Validation problems and anything that
// would invalidate every page (a broken template, a parser contract
// violation, a render or write error) abort the build. Missing optional
// pieces (header, footer, index page) and dependency copy failures only warn
// and the build continues. A fatal error after rendering has started leaves
// already-written pages in the destination; output is not rolled back.
package builder

import (
	"os"
	"path/filepath"

	"swatch/internal/config"
	"swatch/internal/diag"
	"swatch/internal/links"
	"swatch/internal/markdown"
	"swatch/internal/parser"
	"swatch/internal/plugins"
)

// Build runs one full synchronous build and reports success. Everything it
// surfaced to the operator is on the sink by the time it returns.
func Build(cfg *config.BuildConfig, sink *diag.Sink) bool {
	if errs := Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			sink.Errorf("%s", e)
		}
		return false
	}

	header, footer, err := LoadHeaderFooter(cfg.DocumentationAssets, sink)
	if err != nil {
		sink.Errorf("%v", err)
		return false
	}

	if err := ensureDestination(cfg); err != nil {
		sink.Errorf("could not create destination directory %s: %v", cfg.Destination, err)
		return false
	}

	examples, err := markdown.LoadExampleRenderer(cfg.CodeExampleTemplates)
	if err != nil {
		sink.Errorf("%v", err)
		return false
	}

	pages, categories, err := parser.Parse(cfg, sink)
	if err != nil {
		sink.Errorf("%v", err)
		return false
	}

	if err := plugins.Run(cfg.Plugins, pages, categories, cfg.Raw); err != nil {
		sink.Errorf("%v", err)
		return false
	}

	if cfg.Index != "" {
		if _, ok := pages["index.html"]; !ok {
			sink.Warnf("Could not generate index.html, there was no content generated for the category %q.", cfg.Index)
		}
	}

	md := markdown.New(markdown.Options{
		Resolver: links.FromPages(pages),
		Examples: examples,
		Sanitize: !cfg.Unsafe,
	})

	if err := RenderAll(pages, categories, cfg, header, footer, md, sink); err != nil {
		sink.Errorf("%v", err)
		return false
	}

	CopyDependencies(cfg, cfg.Destination, sink)

	if err := CopyAssets(cfg.DocumentationAssets, cfg.Destination, sink); err != nil {
		sink.Errorf("%v", err)
		return false
	}

	sink.Infof("Build completed.")
	return true
}

// ensureDestination creates the destination if it does not exist yet, then
// re-resolves it once: validation may have run against a path that only
// comes into existence here.
func ensureDestination(cfg *config.BuildConfig) error {
	if !config.IsDir(cfg.Destination) {
		if err := os.MkdirAll(cfg.Destination, 0755); err != nil {
			return err
		}
	}
	if resolved, err := filepath.EvalSymlinks(cfg.Destination); err == nil {
		cfg.Destination = resolved
	}
	return nil
}
