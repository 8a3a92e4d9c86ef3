package builder

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"swatch/internal/config"
	"swatch/internal/diag"
)

// writeFile writes one rendered page into the destination, truncating any
// previous copy. Failing to open the file is fatal.
func writeFile(destDir, fileName string, content []byte) error {
	path := filepath.Join(destDir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	defer f.Close()
	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CopyAssets copies every entry of the documentation assets directory into
// the destination, except underscore-prefixed names (header/footer/partials).
// A pre-existing destination entry with the same name is removed first, so
// repeated builds always reflect the current assets.
func CopyAssets(assetsDir, destDir string, sink *diag.Sink) error {
	entries, err := os.ReadDir(assetsDir)
	if err != nil {
		if os.IsNotExist(err) {
			sink.Warnf("Could not copy documentation assets, %s does not exist.", assetsDir)
			return nil
		}
		return fmt.Errorf("could not read documentation assets directory %s: %w", assetsDir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, "_") {
			continue
		}
		target := filepath.Join(destDir, name)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("could not replace %s: %w", target, err)
		}
		if err := copyTree(filepath.Join(assetsDir, name), target); err != nil {
			return fmt.Errorf("failed to copy asset %s: %w", name, err)
		}
	}
	return nil
}

// CopyDependencies copies each configured dependency directory into the
// destination under its base name. A dependency that does not resolve or
// fails to copy is a warning; the remaining dependencies still attempt.
func CopyDependencies(cfg *config.BuildConfig, destDir string, sink *diag.Sink) {
	for _, dep := range cfg.Dependencies {
		if !config.IsDir(dep) {
			sink.Warnf("Could not copy dependency: %s", dep)
			continue
		}
		target := filepath.Join(destDir, filepath.Base(dep))
		if err := os.RemoveAll(target); err != nil {
			sink.Warnf("Could not copy dependency %s: %v", dep, err)
			continue
		}
		if err := copyTree(dep, target); err != nil {
			sink.Warnf("Could not copy dependency %s: %v", dep, err)
		}
	}
}

func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(src, dst)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := copyTree(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
