package frontmatter

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDocument  = errors.New("frontmatter: malformed document")
	ErrInvalidFieldSyntax = errors.New("frontmatter: invalid field syntax")
	ErrUnsupportedValue   = errors.New("frontmatter: value cannot be emitted in block syntax")
)

// MalformedDocumentError reports a document whose delimiter structure is
// broken before any metadata line is interpreted.
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	if e == nil || e.Reason == "" {
		return ErrMalformedDocument.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMalformedDocument.Error(), e.Reason)
}

func (e *MalformedDocumentError) Unwrap() error {
	return ErrMalformedDocument
}

// InvalidFieldSyntaxError reports a metadata line that is neither a key/value
// pair nor a sequence item under a previously opened key. Line is 1-based and
// relative to the full document.
type InvalidFieldSyntaxError struct {
	Line int
	Text string
}

func (e *InvalidFieldSyntaxError) Error() string {
	if e == nil {
		return ErrInvalidFieldSyntax.Error()
	}
	return fmt.Sprintf("%s: line %d: %q", ErrInvalidFieldSyntax.Error(), e.Line, e.Text)
}

func (e *InvalidFieldSyntaxError) Unwrap() error {
	return ErrInvalidFieldSyntax
}
