// Package store provides typed document collections over Redis, SQLite or
// Postgres. Every document carries models.Base; the store assigns its ID
// when empty and stamps its timestamps on every write.
package store

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by ReadOne when no document matches
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateID is returned by Create when the ID is already taken
	ErrDuplicateID = errors.New("document id already exists")

	// ErrWriteContention is returned when a single-document write keeps
	// losing to concurrent writers
	ErrWriteContention = errors.New("too much contention on document")
)

// Filter selects documents by their JSON field names. A scalar value
// matches equal fields and array fields containing it; AnyOf matches any of
// several values. An empty filter matches everything.
type Filter map[string]any

// Patch sets top-level JSON fields of the matched documents
type Patch map[string]any

// ByID is shorthand for a filter on the document ID
func ByID(id string) Filter {
	return Filter{"id": id}
}

// Collection is the CRUD contract every concept stores its documents through
type Collection[T any] interface {
	// Create stores doc, assigning an ID when empty, and returns the ID
	Create(ctx context.Context, doc *T) (string, error)

	// ReadOne returns the first matching document or ErrNotFound
	ReadOne(ctx context.Context, filter Filter) (*T, error)

	// ReadMany returns matching documents ordered by createdAt then id
	ReadMany(ctx context.Context, filter Filter) ([]*T, error)

	// PartialUpdate applies patch to each matching document and returns
	// how many were written
	PartialUpdate(ctx context.Context, filter Filter, patch Patch) (int, error)

	// Delete removes matching documents and returns how many were removed
	Delete(ctx context.Context, filter Filter) (int, error)

	// Count returns the number of matching documents
	Count(ctx context.Context, filter Filter) (int, error)
}

// Backend opens the raw storage behind a named collection
type Backend interface {
	open(name string) (rawStore, error)
}

// mutateFunc rewrites a stored body. ok=false leaves the document untouched.
type mutateFunc func(data []byte) (next []byte, ok bool, err error)

// checkFunc decides whether a stored body should be removed
type checkFunc func(data []byte) (bool, error)

// rawStore is what a backend provides for one collection. update and
// remove must be atomic for the single document they touch.
type rawStore interface {
	insert(ctx context.Context, id string, createdAt time.Time, data []byte) error

	// get returns nil data when the document does not exist
	get(ctx context.Context, id string) ([]byte, error)

	scan(ctx context.Context) ([][]byte, error)
	update(ctx context.Context, id string, fn mutateFunc) (bool, error)
	remove(ctx context.Context, id string, fn checkFunc) (bool, error)
}
