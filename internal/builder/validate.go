package builder

import (
	"fmt"

	"swatch/internal/config"
)

// Validate checks that the resolved config names usable directories. Every
// check runs; the result is the full list of problems, empty when the config
// is valid. It has no side effects.
//
// Destination and documentation assets are only checked for presence in the
// config: the destination may not exist yet (it is created during the
// build), and a missing assets directory degrades to warnings later.
func Validate(cfg *config.BuildConfig) []string {
	var errs []string

	if len(cfg.Source) == 0 {
		errs = append(errs, "No source directory specified in the config")
	}
	for _, src := range cfg.Source {
		if !config.IsDir(src) {
			errs = append(errs, fmt.Sprintf("Can not read source directory (%s), does it exist?", src))
		}
	}

	if cfg.Destination == "" {
		errs = append(errs, "No destination directory specified in the config")
	}

	if cfg.DocumentationAssets == "" {
		errs = append(errs, "No documentation assets directory specified in the config")
	}

	return errs
}
