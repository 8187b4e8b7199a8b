package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/moodmeet/internal/common/apperrors"
	"github.com/KirkDiggler/moodmeet/internal/common/clock"
	"github.com/KirkDiggler/moodmeet/internal/common/uuid"
	"github.com/KirkDiggler/moodmeet/internal/models"
)

// Document is satisfied by pointers to any model embedding models.Base
type Document[T any] interface {
	*T
	Doc() *models.Base
}

// immutable fields cannot be patched
var immutable = map[string]bool{
	"id":        true,
	"createdAt": true,
}

// Config holds configuration for a collection
type Config struct {
	// Backend provides the raw storage
	Backend Backend

	// Name identifies the collection within the backend
	Name string

	Clock         clock.Clock
	UUIDGenerator uuid.Generator
}

type collection[T any, PT Document[T]] struct {
	name  string
	raw   rawStore
	clock clock.Clock
	uuid  uuid.Generator
}

// New creates a collection of T documents
func New[T any, PT Document[T]](cfg *Config) (*collection[T, PT], error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Backend == nil {
		return nil, errors.New("backend cannot be nil")
	}

	if cfg.Name == "" {
		return nil, errors.New("collection name cannot be empty")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	raw, err := cfg.Backend.open(cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection %s: %w", cfg.Name, err)
	}

	return &collection[T, PT]{
		name:  cfg.Name,
		raw:   raw,
		clock: cfg.Clock,
		uuid:  cfg.UUIDGenerator,
	}, nil
}

// Create stores a new document
func (c *collection[T, PT]) Create(ctx context.Context, doc *T) (string, error) {
	if doc == nil {
		return "", errors.New("document cannot be nil")
	}

	base := PT(doc).Doc()
	if base.ID == "" {
		base.ID = c.uuid.NewID()
	}
	now := c.clock.Now()
	base.CreatedAt = now
	base.UpdatedAt = now

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s document: %w", c.name, err)
	}

	if err := c.raw.insert(ctx, base.ID, now, data); err != nil {
		return "", fmt.Errorf("failed to create %s document: %w", c.name, err)
	}

	return base.ID, nil
}

// ReadOne returns the first matching document
func (c *collection[T, PT]) ReadOne(ctx context.Context, filter Filter) (*T, error) {
	docs, err := c.ReadMany(ctx, filter)
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	return docs[0], nil
}

// ReadMany returns every matching document in creation order
func (c *collection[T, PT]) ReadMany(ctx context.Context, filter Filter) ([]*T, error) {
	m, err := compile(filter)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, "invalid filter", err)
	}

	return c.find(ctx, m)
}

// PartialUpdate patches every matching document
func (c *collection[T, PT]) PartialUpdate(ctx context.Context, filter Filter, patch Patch) (int, error) {
	if len(patch) == 0 {
		return 0, apperrors.Invalid("patch cannot be empty")
	}

	m, err := compile(filter)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalid, "invalid filter", err)
	}

	values, err := c.preparePatch(patch)
	if err != nil {
		return 0, err
	}

	docs, err := c.find(ctx, m)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, doc := range docs {
		id := PT(doc).Doc().ID
		ok, err := c.raw.update(ctx, id, func(data []byte) ([]byte, bool, error) {
			fields, err := decodeFields(data)
			if err != nil {
				return nil, false, err
			}
			if !m.matches(fields) {
				return nil, false, nil
			}

			for k, v := range values {
				fields[k] = v
			}
			fields["updatedAt"] = c.clock.Now()

			next, err := c.rebuild(fields)
			if err != nil {
				return nil, false, err
			}
			return next, true, nil
		})
		if err != nil {
			return updated, fmt.Errorf("failed to update %s document %s: %w", c.name, id, err)
		}
		if ok {
			updated++
		}
	}

	return updated, nil
}

// Delete removes every matching document
func (c *collection[T, PT]) Delete(ctx context.Context, filter Filter) (int, error) {
	m, err := compile(filter)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalid, "invalid filter", err)
	}

	docs, err := c.find(ctx, m)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, doc := range docs {
		id := PT(doc).Doc().ID
		ok, err := c.raw.remove(ctx, id, func(data []byte) (bool, error) {
			fields, err := decodeFields(data)
			if err != nil {
				return false, err
			}
			return m.matches(fields), nil
		})
		if err != nil {
			return deleted, fmt.Errorf("failed to delete %s document %s: %w", c.name, id, err)
		}
		if ok {
			deleted++
		}
	}

	return deleted, nil
}

// Count returns the number of matching documents
func (c *collection[T, PT]) Count(ctx context.Context, filter Filter) (int, error) {
	docs, err := c.ReadMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (c *collection[T, PT]) find(ctx context.Context, m matcher) ([]*T, error) {
	var blobs [][]byte
	if id, ok := m.id(); ok {
		data, err := c.raw.get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s document: %w", c.name, err)
		}
		if data != nil {
			blobs = append(blobs, data)
		}
	} else {
		all, err := c.raw.scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s documents: %w", c.name, err)
		}
		blobs = all
	}

	docs := make([]*T, 0, len(blobs))
	for _, data := range blobs {
		fields, err := decodeFields(data)
		if err != nil {
			return nil, err
		}
		if !m.matches(fields) {
			continue
		}

		doc := new(T)
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s document: %w", c.name, err)
		}
		docs = append(docs, doc)
	}

	sort.SliceStable(docs, func(i, j int) bool {
		a, b := PT(docs[i]).Doc(), PT(docs[j]).Doc()
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	return docs, nil
}

// preparePatch rejects immutable fields and checks that the patched
// values fit T before anything is written
func (c *collection[T, PT]) preparePatch(patch Patch) (map[string]any, error) {
	values := make(map[string]any, len(patch))
	for k, v := range patch {
		if immutable[k] {
			return nil, apperrors.Invalid("field %q cannot be changed", k)
		}
		n, err := normalize(v)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindInvalid, fmt.Sprintf("invalid value for %q", k), err)
		}
		values[k] = n
	}

	empty, err := json.Marshal(new(T))
	if err != nil {
		return nil, err
	}
	fields, err := decodeFields(empty)
	if err != nil {
		return nil, err
	}
	for k, v := range values {
		fields[k] = v
	}
	if _, err := c.rebuild(fields); err != nil {
		return nil, err
	}

	return values, nil
}

// rebuild encodes patched fields back through T so the stored body keeps
// the model's shape
func (c *collection[T, PT]) rebuild(fields map[string]any) ([]byte, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	doc := new(T)
	if err := dec.Decode(doc); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInvalid, fmt.Sprintf("patch does not fit %s document", c.name), err)
	}

	return json.Marshal(doc)
}
