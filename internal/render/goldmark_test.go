package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-posts/pkg/interfaces"
)

func TestRender(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	out, err := renderer.Render([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := string(out)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered heading, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected <strong> emphasis, got %q", got)
	}
}

func TestRenderWithHardWraps(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{})

	out, err := renderer.RenderWithOptions([]byte("line one\nline two"), interfaces.RenderOptions{HardWraps: true})
	if err != nil {
		t.Fatalf("RenderWithOptions: %v", err)
	}
	if !strings.Contains(string(out), "line one<br>") {
		t.Fatalf("expected hard wrap break, got %q", string(out))
	}
}

func TestRenderSafeModeStripsRawHTML(t *testing.T) {
	renderer := NewGoldmarkRenderer(interfaces.RenderOptions{SafeMode: true})

	out, err := renderer.Render([]byte("before\n\n<script>alert(1)</script>\n\nafter"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("safe mode should not emit raw HTML, got %q", string(out))
	}
}
