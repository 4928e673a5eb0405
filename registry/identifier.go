package registry

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
)

// dateLayout is the calendar component of the filename convention.
const dateLayout = "2006-01-02"

// Identifier keys a post by publication date and slug, mirroring the
// `YYYY-MM-DD-slug` filename convention. Identifiers order posts and enforce
// uniqueness inside a Registry.
type Identifier struct {
	Date time.Time
	Slug string
}

// NewIdentifier builds an identifier from its components. The slug is
// normalized with the shared slug rules so lookups are canonical.
func NewIdentifier(date time.Time, rawSlug string) (Identifier, error) {
	if date.IsZero() {
		return Identifier{}, ErrIdentifierDate
	}

	normalized, err := slug.Normalize(rawSlug)
	if err != nil || normalized == "" {
		return Identifier{}, fmt.Errorf("%w: %q", ErrIdentifierSlug, rawSlug)
	}

	return Identifier{Date: date.UTC().Truncate(24 * time.Hour), Slug: normalized}, nil
}

// Parse interprets a `YYYY-MM-DD-slug` identifier string.
func Parse(value string) (Identifier, error) {
	if len(value) < len(dateLayout)+2 || value[len(dateLayout)] != '-' {
		return Identifier{}, fmt.Errorf("%w: %q", ErrIdentifierFormat, value)
	}

	date, err := time.Parse(dateLayout, value[:len(dateLayout)])
	if err != nil {
		return Identifier{}, fmt.Errorf("%w: %q", ErrIdentifierDate, value[:len(dateLayout)])
	}

	return NewIdentifier(date, value[len(dateLayout)+1:])
}

// ParseFileName derives an identifier from a document path following the
// `YYYY-MM-DD-slug.md` convention. Directories and the markdown extension are
// stripped before parsing.
func ParseFileName(name string) (Identifier, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	for _, ext := range []string{".md", ".markdown"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
			break
		}
	}
	return Parse(base)
}

// String renders the canonical `YYYY-MM-DD-slug` form.
func (id Identifier) String() string {
	return id.Date.Format(dateLayout) + "-" + id.Slug
}

// IsZero reports whether the identifier is unset.
func (id Identifier) IsZero() bool {
	return id.Date.IsZero() && id.Slug == ""
}

// Less orders identifiers by descending date, slug ascending on equal dates.
// It matches the listing order a registry exposes.
func (id Identifier) Less(other Identifier) bool {
	if !id.Date.Equal(other.Date) {
		return id.Date.After(other.Date)
	}
	return id.Slug < other.Slug
}
