// Package loader discovers post documents on a filesystem. It is mechanical
// on purpose: discovery and reading happen here, while identifier derivation
// and parsing stay with the pipeline so a single bad file surfaces as a batch
// failure instead of aborting the walk.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Config controls how documents are discovered under a base directory.
type Config struct {
	// BasePath is the root directory where documents live.
	BasePath string
	// Pattern limits discovered files to a glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
}

// Source is one discovered document: its path relative to the base, the raw
// bytes, and the modification time.
type Source struct {
	Path     string
	Data     []byte
	Modified time.Time
}

// Loader walks a filesystem and reads matching documents.
type Loader struct {
	fs        fs.FS
	basePath  string
	pattern   string
	recursive bool
}

// New constructs a Loader over the provided filesystem.
func New(filesystem fs.FS, cfg Config) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}

	return &Loader{
		fs:        filesystem,
		basePath:  filepath.Clean(cfg.BasePath),
		pattern:   pattern,
		recursive: cfg.Recursive,
	}
}

// LoadFile reads a single document.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rel, err := l.makeRelative(path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	data, err := fs.ReadFile(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("loader read %s: %w", rel, err)
	}

	info, err := fs.Stat(l.fs, rel)
	if err != nil {
		return nil, fmt.Errorf("loader stat %s: %w", rel, err)
	}

	return &Source{Path: rel, Data: data, Modified: info.ModTime()}, nil
}

// LoadDirectory discovers matching files under dir and returns them sorted by
// path for deterministic downstream processing.
func (l *Loader) LoadDirectory(ctx context.Context, dir string) ([]*Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := l.makeRelative(dir)
	if err != nil {
		return nil, err
	}
	root = filepath.ToSlash(filepath.Clean(root))

	var sources []*Source

	walkErr := fs.WalkDir(l.fs, root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if d.IsDir() {
			if !l.shouldRecurse(root, path) {
				return fs.SkipDir
			}
			return nil
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		rel := filepath.ToSlash(path)
		if !l.matchesPattern(rel) {
			return nil
		}

		source, err := l.LoadFile(ctx, rel)
		if err != nil {
			return err
		}
		sources = append(sources, source)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Path < sources[j].Path
	})
	return sources, nil
}

func (l *Loader) shouldRecurse(root, current string) bool {
	if l.recursive {
		return true
	}
	// With recursion off only the root directory itself is walked.
	return filepath.Clean(root) == filepath.Clean(current)
}

func (l *Loader) matchesPattern(path string) bool {
	pattern := filepath.ToSlash(l.pattern)
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}

	target := path
	if !strings.Contains(pattern, "/") {
		target = filepath.Base(path)
	}

	match, err := filepath.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}

func (l *Loader) makeRelative(path string) (string, error) {
	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) {
		return clean, nil
	}
	if l.basePath == "" {
		return "", fmt.Errorf("loader: absolute path %s provided without base path", path)
	}
	rel, err := filepath.Rel(l.basePath, clean)
	if err != nil {
		return "", fmt.Errorf("loader: make relative %s: %w", path, err)
	}
	return rel, nil
}
