package registry

import (
	"errors"
	"fmt"
)

var (
	ErrIdentifierFormat    = errors.New("registry: identifier does not match date-slug convention")
	ErrIdentifierDate      = errors.New("registry: identifier date is not a valid calendar date")
	ErrIdentifierSlug      = errors.New("registry: identifier slug is invalid")
	ErrTitleRequired       = errors.New("registry: post title is required")
	ErrBodyRequired        = errors.New("registry: post body is required")
	ErrDuplicateIdentifier = errors.New("registry: duplicate identifier")
)

// DuplicateIdentifierError reports an insert that collides with an already
// registered post. The registry keeps the first post untouched.
type DuplicateIdentifierError struct {
	ID Identifier
}

func (e *DuplicateIdentifierError) Error() string {
	if e == nil {
		return ErrDuplicateIdentifier.Error()
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateIdentifier.Error(), e.ID)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicateIdentifier
}
