// Package config loads the styleguide config file and resolves it into the
// immutable settings a build runs against.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigError reports a config document that could not be used at all
// (unreadable YAML, or a document that is not a mapping). It is a distinct
// type so callers can tell it apart from validation errors, which describe
// a well-formed config pointing at bad paths.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("could not parse config file %s: %s", e.Path, e.Reason)
}

// StringList accepts a YAML scalar or sequence, so `source: ui/css` and
// `source: [ui/css, ui/js]` are equivalent.
type StringList []string

func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = StringList(many)
		return nil
	default:
		return fmt.Errorf("expected a string or a list of strings")
	}
}

// Options holds what the config file supplied, before defaults and path
// resolution. Zero values mean the key was absent.
type Options struct {
	Source               StringList `yaml:"source"`
	Destination          string     `yaml:"destination"`
	DocumentationAssets  string     `yaml:"documentation_assets"`
	BasePath             string     `yaml:"base_path"`
	Dependencies         []string   `yaml:"dependencies"`
	Index                string     `yaml:"index"`
	NavLevel             string     `yaml:"nav_level"`
	CustomExtensions     []string   `yaml:"custom_extensions"`
	IgnorePaths          []string   `yaml:"ignore_paths"`
	CodeExampleTemplates string     `yaml:"code_example_templates"`
	Plugins              []string   `yaml:"plugins"`
	Unsafe               bool       `yaml:"unsafe"`

	// Raw is the whole decoded document, passed verbatim to templates.
	Raw map[string]any `yaml:"-"`
}

// Load reads and decodes a config file. A document that is not a mapping
// yields a *ConfigError rather than a validation error.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, &ConfigError{Path: path, Reason: "config document is not a mapping"}
	}

	opts := &Options{}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	opts.Raw = m
	return opts, nil
}

// BuildConfig is the resolved configuration a build runs against. All paths
// are absolute once Resolve returns; nothing consults the process working
// directory afterwards. The struct is not mutated after construction, except
// that the orchestrator re-resolves Destination once after creating it.
type BuildConfig struct {
	Source               []string
	Destination          string
	DocumentationAssets  string
	BasePath             string
	Dependencies         []string
	Index                string
	NavLevel             string
	CustomExtensions     []string
	IgnorePaths          []string
	CodeExampleTemplates string
	Plugins              []string
	Unsafe               bool
	Raw                  map[string]any
}

// Resolve merges defaults into opts and resolves every relative path against
// baseDir (normally the directory containing the config file). An explicit
// base_path in the config overrides baseDir.
func Resolve(opts *Options, baseDir string) *BuildConfig {
	base := baseDir
	if opts.BasePath != "" {
		base = resolvePath(opts.BasePath, baseDir)
	}

	cfg := &BuildConfig{
		BasePath:             base,
		Index:                opts.Index,
		NavLevel:             opts.NavLevel,
		CustomExtensions:     opts.CustomExtensions,
		IgnorePaths:          opts.IgnorePaths,
		Plugins:              opts.Plugins,
		Unsafe:               opts.Unsafe,
		Raw:                  opts.Raw,
		Destination:          resolvePath(opts.Destination, base),
		DocumentationAssets:  resolvePath(opts.DocumentationAssets, base),
		CodeExampleTemplates: resolvePath(opts.CodeExampleTemplates, base),
	}
	if cfg.NavLevel == "" {
		cfg.NavLevel = "page"
	}
	for _, src := range opts.Source {
		cfg.Source = append(cfg.Source, resolvePath(src, base))
	}
	for _, dep := range opts.Dependencies {
		cfg.Dependencies = append(cfg.Dependencies, resolvePath(dep, base))
	}
	return cfg
}

func resolvePath(path, base string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// IsDir reports whether path resolves to an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
