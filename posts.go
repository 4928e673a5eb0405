// Package posts assembles the front-matter parsing, validation, and registry
// components into a batch pipeline for markdown post collections.
package posts

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-posts/frontmatter"
	"github.com/goliatone/go-posts/internal/loader"
	"github.com/goliatone/go-posts/internal/logging"
	"github.com/goliatone/go-posts/internal/render"
	"github.com/goliatone/go-posts/pkg/interfaces"
	"github.com/goliatone/go-posts/registry"
	"github.com/goliatone/go-posts/schema"
)

// Document is one in-memory pipeline input. Path must follow the
// `YYYY-MM-DD-slug.md` convention; Source is the raw file content.
type Document struct {
	Path   string
	Source []byte
}

// Failure pairs a document reference with the error that excluded it.
type Failure struct {
	Ref string
	Err error
}

// BatchResult reports one pipeline run: every post that made it into the
// registry and every document that did not, in input order. A failure never
// aborts the batch; the caller decides whether any failure blocks publishing.
type BatchResult struct {
	RunID      uuid.UUID
	Registered []*registry.Post
	Failures   []Failure
}

// Engine wires loader, parser, validator, renderer and registry together.
type Engine struct {
	cfg        Config
	filesystem fs.FS
	loader     *loader.Loader
	renderer   interfaces.Renderer
	schema     schema.Schema
	registry   *registry.Registry
	logger     interfaces.Logger
}

// Option customises engine construction.
type Option func(*Engine)

// WithLogger injects the engine logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRenderer overrides the body renderer built from Config.Render.
func WithRenderer(renderer interfaces.Renderer) Option {
	return func(e *Engine) {
		e.renderer = renderer
	}
}

// WithSchema overrides the field policy built from Config.Schema.
func WithSchema(s schema.Schema) Option {
	return func(e *Engine) {
		e.schema = s
	}
}

// WithFilesystem substitutes the content filesystem, primarily for tests.
func WithFilesystem(filesystem fs.FS) Option {
	return func(e *Engine) {
		e.filesystem = filesystem
	}
}

// New builds an engine from the supplied configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		schema:   cfg.Schema.Schema(),
		registry: registry.New(),
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.renderer == nil && cfg.Render.Enabled {
		e.renderer = render.NewGoldmarkRenderer(cfg.Render.Options())
	}

	if e.filesystem == nil {
		if _, err := os.Stat(cfg.ContentDir); err != nil {
			return nil, fmt.Errorf("posts: stat content dir %s: %w", cfg.ContentDir, err)
		}
		e.filesystem = os.DirFS(cfg.ContentDir)
	}

	e.loader = loader.New(e.filesystem, loader.Config{
		BasePath:  cfg.ContentDir,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return e, nil
}

// Registry exposes the accumulated posts for querying and iteration.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// BuildPost runs the pure per-document stage: derive the identifier from the
// path, parse the front matter, validate it against the schema, enforce post
// invariants, and render the body. It touches no shared state, so documents
// can be built concurrently.
func (e *Engine) BuildPost(doc Document) (*registry.Post, error) {
	id, err := registry.ParseFileName(doc.Path)
	if err != nil {
		return nil, err
	}

	parsed, err := frontmatter.Parse(doc.Source)
	if err != nil {
		return nil, err
	}

	if err := e.schema.Validate(parsed.Meta); err != nil {
		return nil, err
	}

	post, err := registry.NewPost(id, parsed.Meta, parsed.Body)
	if err != nil {
		return nil, err
	}

	post.Path = doc.Path
	sum := sha256.Sum256(doc.Source)
	post.Checksum = sum[:]

	if e.renderer != nil {
		html, err := e.renderer.Render(post.Body)
		if err != nil {
			return nil, fmt.Errorf("posts: render %s: %w", doc.Path, err)
		}
		post.BodyHTML = html
	}

	return post, nil
}

// Process runs the batch pipeline over in-memory documents. Build failures
// and duplicate identifiers land in the result's Failures slice in input
// order; the error return is reserved for cancellation.
func (e *Engine) Process(ctx context.Context, docs []Document) (*BatchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	built := make([]*registry.Post, len(docs))
	buildErrs := make([]error, len(docs))

	if err := e.buildAll(ctx, docs, built, buildErrs); err != nil {
		return nil, err
	}

	result := &BatchResult{RunID: uuid.New()}

	// Inserts stay sequential: the registry serializes writers anyway and a
	// single pass keeps duplicate detection deterministic in input order.
	for i, doc := range docs {
		if buildErrs[i] != nil {
			result.Failures = append(result.Failures, Failure{Ref: doc.Path, Err: buildErrs[i]})
			continue
		}
		if err := e.registry.Insert(built[i]); err != nil {
			result.Failures = append(result.Failures, Failure{Ref: doc.Path, Err: err})
			continue
		}
		result.Registered = append(result.Registered, built[i])
	}

	for _, failure := range result.Failures {
		e.logger.Warn("posts.process.document_failed", "ref", failure.Ref, "error", failure.Err)
	}
	e.logger.Info("posts.process.done",
		"run_id", result.RunID.String(),
		"documents", len(docs),
		"registered", len(result.Registered),
		"failures", len(result.Failures),
	)

	return result, nil
}

// ImportDirectory loads every matching document under dir (relative to the
// content root) and processes it as a batch.
func (e *Engine) ImportDirectory(ctx context.Context, dir string) (*BatchResult, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	sources, err := e.loader.LoadDirectory(ctx, dir)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(sources))
	for _, source := range sources {
		docs = append(docs, Document{Path: source.Path, Source: source.Data})
	}

	return e.Process(ctx, docs)
}

// buildAll fans the build stage out over Config.Concurrency workers. Each
// slot in built/errs belongs to one input index, so workers never contend.
func (e *Engine) buildAll(ctx context.Context, docs []Document, built []*registry.Post, errs []error) error {
	workers := e.cfg.Concurrency
	if workers < 1 {
		workers = 1
	}
	if workers > len(docs) {
		workers = len(docs)
	}

	if workers <= 1 {
		for i, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			built[i], errs[i] = e.BuildPost(doc)
		}
		return nil
	}

	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				built[i], errs[i] = e.BuildPost(docs[i])
			}
		}()
	}

feed:
	for i := range docs {
		select {
		case <-ctx.Done():
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	return ctx.Err()
}
