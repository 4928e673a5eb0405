package interfaces

// RenderOptions tune how a Markdown body is converted to HTML.
type RenderOptions struct {
	// Extensions selects named renderer extensions (e.g. "gfm", "footnote").
	Extensions []string
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough.
	SafeMode bool
}

// Renderer converts a Markdown body into HTML for an external publishing
// collaborator. Implementations must be safe for concurrent use.
type Renderer interface {
	Render(markdown []byte) ([]byte, error)
	RenderWithOptions(markdown []byte, opts RenderOptions) ([]byte, error)
}
