// Package registry holds validated posts in memory, keyed by their
// date-slug identifier. Inserts are serialized; a fully populated registry
// can be read concurrently without coordination.
package registry

import (
	"errors"
	"iter"
	"sort"
	"sync"
)

// Registry is an accumulate-then-query collection of posts. The zero value is
// not usable; construct with New.
type Registry struct {
	mu    sync.RWMutex
	posts map[string]*Post
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{posts: map[string]*Post{}}
}

// Insert registers a post. Concurrent inserts are safe; when two posts share
// an identifier the first insert wins and the second fails with
// ErrDuplicateIdentifier.
func (r *Registry) Insert(post *Post) error {
	if post == nil {
		return errors.New("registry: nil post")
	}
	if post.ID.IsZero() {
		return ErrIdentifierFormat
	}

	key := post.ID.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.posts[key]; exists {
		return &DuplicateIdentifierError{ID: post.ID}
	}
	r.posts[key] = post
	return nil
}

// Get looks up a post by identifier.
func (r *Registry) Get(id Identifier) (*Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[id.String()]
	return post, ok
}

// Lookup resolves a post from its canonical `YYYY-MM-DD-slug` string.
func (r *Registry) Lookup(key string) (*Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.posts[key]
	return post, ok
}

// Len reports the number of registered posts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// All returns a restartable sequence of posts in descending date order,
// slug ascending on equal dates. The snapshot is taken when iteration starts,
// so each restart observes the registry as of that moment.
func (r *Registry) All() iter.Seq[*Post] {
	return func(yield func(*Post) bool) {
		for _, post := range r.Posts() {
			if !yield(post) {
				return
			}
		}
	}
}

// Posts returns an ordered snapshot slice. All is preferred for consumers
// that may stop early.
func (r *Registry) Posts() []*Post {
	r.mu.RLock()
	snapshot := make([]*Post, 0, len(r.posts))
	for _, post := range r.posts {
		snapshot = append(snapshot, post)
	}
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].ID.Less(snapshot[j].ID)
	})
	return snapshot
}
