package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

func TestParseBasicDocument(t *testing.T) {
	doc, err := Parse([]byte("---\nlayout: post\ntitle: Hello World\n---\nBody text."))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := scalarOf(t, doc.Meta, "layout"); got != "post" {
		t.Fatalf("layout mismatch, got %q", got)
	}
	if got := scalarOf(t, doc.Meta, "title"); got != "Hello World" {
		t.Fatalf("title mismatch, got %q", got)
	}
	if string(doc.Body) != "Body text." {
		t.Fatalf("body mismatch, got %q", string(doc.Body))
	}
}

func TestParseMissingOpeningMarker(t *testing.T) {
	doc, err := Parse([]byte("layout: post\n---\nbody"))
	if doc != nil {
		t.Fatalf("expected no partial document, got %#v", doc)
	}
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParseMissingClosingMarker(t *testing.T) {
	// The block contains a syntactically broken line, but delimiter failures
	// must win: no field line is interpreted without a closing marker.
	_, err := Parse([]byte("---\nlayout: post\nnot a field line\nbody without closing"))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
	if errors.Is(err, ErrInvalidFieldSyntax) {
		t.Fatalf("delimiter failure must not surface as field syntax error: %v", err)
	}
}

func TestParseInvalidFieldLine(t *testing.T) {
	_, err := Parse([]byte("---\nlayout: post\nthis is not metadata\n---\nbody"))
	if !errors.Is(err, ErrInvalidFieldSyntax) {
		t.Fatalf("expected ErrInvalidFieldSyntax, got %v", err)
	}

	var syntaxErr *InvalidFieldSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected *InvalidFieldSyntaxError, got %T", err)
	}
	if syntaxErr.Line != 3 {
		t.Fatalf("expected failure on line 3, got %d", syntaxErr.Line)
	}
}

func TestParseSequenceBlock(t *testing.T) {
	source := strings.Join([]string{
		"---",
		"title: Tagged",
		"tags:",
		"  - ci",
		"  - dotnet",
		"categories: [notes, engineering]",
		"---",
		"body",
	}, "\n")

	doc, err := Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tags, ok := doc.Meta.Get("tags")
	if !ok || tags.Kind() != KindSequence {
		t.Fatalf("expected tags sequence, got %v", tags.Kind())
	}
	if items := tags.Sequence(); len(items) != 2 || items[0] != "ci" || items[1] != "dotnet" {
		t.Fatalf("tags items mismatch: %#v", items)
	}

	categories, ok := doc.Meta.Get("categories")
	if !ok || categories.Kind() != KindSequence {
		t.Fatalf("expected inline categories sequence, got %v", categories.Kind())
	}
	if items := categories.Sequence(); len(items) != 2 || items[1] != "engineering" {
		t.Fatalf("categories items mismatch: %#v", items)
	}
}

func TestParseSequenceItemWithoutKey(t *testing.T) {
	_, err := Parse([]byte("---\n- orphan item\n---\nbody"))
	if !errors.Is(err, ErrInvalidFieldSyntax) {
		t.Fatalf("expected ErrInvalidFieldSyntax, got %v", err)
	}
}

func TestParseSequenceInterruptedByScalar(t *testing.T) {
	// A scalar assignment closes the open sequence key; a trailing item line
	// no longer has a home.
	source := "---\ntags:\n  - one\nlayout: post\n  - two\n---\nbody"
	_, err := Parse([]byte(source))
	if !errors.Is(err, ErrInvalidFieldSyntax) {
		t.Fatalf("expected ErrInvalidFieldSyntax, got %v", err)
	}
}

func TestParsePreservesUnknownKeys(t *testing.T) {
	doc, err := Parse([]byte("---\nlayout: post\ntitle: T\nx_reading_time: 4 min\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := scalarOf(t, doc.Meta, "x_reading_time"); got != "4 min" {
		t.Fatalf("unknown key not preserved, got %q", got)
	}
	keys := doc.Meta.Keys()
	if len(keys) != 3 || keys[2] != "x_reading_time" {
		t.Fatalf("key order not preserved: %#v", keys)
	}
}

func TestParseEmptyValueStaysScalar(t *testing.T) {
	doc, err := Parse([]byte("---\ndescription:\ntitle: T\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	description, ok := doc.Meta.Get("description")
	if !ok || description.Kind() != KindScalar || description.Scalar() != "" {
		t.Fatalf("expected empty scalar for bare key, got %v %q", description.Kind(), description.Scalar())
	}
}

func TestParseCRLFSource(t *testing.T) {
	doc, err := Parse([]byte("---\r\nlayout: post\r\ntitle: T\r\n---\r\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := scalarOf(t, doc.Meta, "layout"); got != "post" {
		t.Fatalf("layout mismatch with CRLF endings, got %q", got)
	}
}

func TestParseValueContainingColon(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: MongoDB: the good parts\n---\nbody"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := scalarOf(t, doc.Meta, "title"); got != "MongoDB: the good parts" {
		t.Fatalf("title mismatch, got %q", got)
	}
}

func scalarOf(tb testing.TB, meta *Mapping, key string) string {
	tb.Helper()
	value, ok := meta.Get(key)
	if !ok {
		tb.Fatalf("key %q missing from mapping", key)
	}
	if value.Kind() != KindScalar {
		tb.Fatalf("key %q is %v, expected scalar", key, value.Kind())
	}
	return value.Scalar()
}
