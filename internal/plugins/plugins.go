// Package plugins holds the hook registry. A plugin registers itself (in an
// init function or at program start) and runs after parsing when the config
// names it; what it does with the parsed data is its own business.
package plugins

import (
	"fmt"
	"sort"
	"strings"

	"swatch/internal/doc"
)

// Plugin is a named post-parse hook. AfterParse receives the parsed pages,
// the category index and the raw config map; it may inspect or augment the
// pages before rendering.
type Plugin interface {
	Name() string
	AfterParse(pages doc.PageMap, categories *doc.CategoryIndex, config map[string]any) error
}

var registry = map[string]Plugin{}

// Register makes a plugin available by name. Registering the same name twice
// panics; that is a programming error, not a runtime condition.
func Register(p Plugin) {
	name := p.Name()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("plugins: duplicate registration of %q", name))
	}
	registry[name] = p
}

// Registered returns the registered plugin names, sorted.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run invokes each named plugin in the order the config listed them. Naming
// a plugin that was never registered is an error, as is any error a plugin
// returns; both abort the build.
func Run(names []string, pages doc.PageMap, categories *doc.CategoryIndex, config map[string]any) error {
	for _, name := range names {
		p, ok := registry[name]
		if !ok {
			if known := Registered(); len(known) > 0 {
				return fmt.Errorf("plugin %q is not registered (registered plugins: %s)", name, strings.Join(known, ", "))
			}
			return fmt.Errorf("plugin %q is not registered", name)
		}
		if err := p.AfterParse(pages, categories, config); err != nil {
			return fmt.Errorf("plugin %q failed: %w", name, err)
		}
	}
	return nil
}
