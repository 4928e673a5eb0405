package registry

import (
	"strings"
	"time"

	"github.com/goliatone/go-posts/frontmatter"
	"github.com/goliatone/go-posts/schema"
)

// Post is one validated content document: derived identity, the common
// metadata fields lifted out of the mapping, and the opaque body. The full
// mapping is retained so unrecognised keys survive for downstream consumers.
type Post struct {
	ID          Identifier
	Title       string
	Layout      string
	Description string
	Categories  []string
	Tags        []string
	Comments    bool
	Meta        *frontmatter.Mapping
	Body        []byte
	BodyHTML    []byte
	Path        string
	Checksum    []byte
	Modified    time.Time
}

// NewPost assembles a Post from a validated metadata mapping and body,
// enforcing the non-empty title and body invariants.
func NewPost(id Identifier, meta *frontmatter.Mapping, body []byte) (*Post, error) {
	title := scalarField(meta, "title")
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, ErrBodyRequired
	}

	post := &Post{
		ID:          id,
		Title:       title,
		Layout:      scalarField(meta, "layout"),
		Description: scalarField(meta, "description"),
		Categories:  uniqueItems(sequenceField(meta, "categories")),
		Tags:        sequenceField(meta, "tags"),
		Meta:        meta,
		Body:        body,
	}

	if value, ok := meta.Get("comments"); ok && value.Kind() == frontmatter.KindScalar {
		if parsed, ok := schema.ParseBool(value.Scalar()); ok {
			post.Comments = parsed
		}
	}

	return post, nil
}

func scalarField(meta *frontmatter.Mapping, key string) string {
	value, ok := meta.Get(key)
	if !ok || value.Kind() != frontmatter.KindScalar {
		return ""
	}
	return strings.TrimSpace(value.Scalar())
}

func sequenceField(meta *frontmatter.Mapping, key string) []string {
	value, ok := meta.Get(key)
	if !ok || value.Kind() != frontmatter.KindSequence {
		return nil
	}
	return value.Sequence()
}

// uniqueItems deduplicates while keeping first-seen order; categories behave
// as a set.
func uniqueItems(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
