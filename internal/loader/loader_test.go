package loader

import (
	"context"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"2024-01-05-first-post.md":        &fstest.MapFile{Data: []byte("---\ntitle: A\n---\nbody")},
		"2024-02-10-second-post.md":       &fstest.MapFile{Data: []byte("---\ntitle: B\n---\nbody")},
		"drafts/2024-03-01-wip.md":        &fstest.MapFile{Data: []byte("---\ntitle: C\n---\nbody")},
		"notes.txt":                       &fstest.MapFile{Data: []byte("not a post")},
		"assets/2024-01-05-not-a-post.js": &fstest.MapFile{Data: []byte("code")},
	}
}

func TestLoadDirectoryNonRecursive(t *testing.T) {
	l := New(testFS(), Config{Pattern: "*.md", Recursive: false})

	sources, err := l.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(sources) != 2 {
		t.Fatalf("expected 2 root documents, got %d", len(sources))
	}
	if sources[0].Path != "2024-01-05-first-post.md" || sources[1].Path != "2024-02-10-second-post.md" {
		t.Fatalf("unexpected order: %q %q", sources[0].Path, sources[1].Path)
	}
}

func TestLoadDirectoryRecursive(t *testing.T) {
	l := New(testFS(), Config{Pattern: "*.md", Recursive: true})

	sources, err := l.LoadDirectory(context.Background(), ".")
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(sources))
	}
}

func TestLoadFile(t *testing.T) {
	l := New(testFS(), Config{})

	source, err := l.LoadFile(context.Background(), "2024-01-05-first-post.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(source.Data) == 0 {
		t.Fatalf("expected file contents")
	}
}

func TestLoadFileMissing(t *testing.T) {
	l := New(testFS(), Config{})

	if _, err := l.LoadFile(context.Background(), "2024-01-01-missing.md"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadDirectoryCancelledContext(t *testing.T) {
	l := New(testFS(), Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := l.LoadDirectory(ctx, "."); err == nil {
		t.Fatalf("expected context error")
	}
}
