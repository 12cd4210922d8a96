// Package documents stores catalog records as JSON documents grouped by kind
package documents

//go:generate mockgen -destination=mock/mock_repository.go -package=documentsmock github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents Repository

import (
	"context"
	"encoding/json"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// Repository is a schemaless document store with no join primitive. Records
// are unique by (kind, name); the store assigns their identifiers.
type Repository interface {
	// InsertMany stores records of one kind as a single bulk write.
	// Results are returned in call order. A record whose name already exists
	// is not written; its result carries the existing id and Duplicate=true.
	// Returns errors.InvalidArgument for unknown kinds or nameless records
	// Returns errors.Unavailable or errors.Internal for storage failures
	InsertMany(ctx context.Context, input InsertManyInput) (*InsertManyOutput, error)

	// FindAll returns every document of a kind in insertion order
	FindAll(ctx context.Context, input FindAllInput) (*FindAllOutput, error)

	// FindByField returns the documents of a kind whose field equals value.
	// Field "id" is a direct lookup; "name" and the record's index fields
	// are indexed. Zero matches is an empty result, not an error.
	// Returns errors.InvalidArgument for empty fields
	FindByField(ctx context.Context, input FindByFieldInput) (*FindByFieldOutput, error)

	// Count returns the number of documents of a kind
	Count(ctx context.Context, input CountInput) (*CountOutput, error)

	// Ping checks the store is reachable
	// Returns errors.Unavailable when it is not
	Ping(ctx context.Context) error
}

// Document is one stored record
type Document struct {
	ID   string
	Kind dnd5e.Kind
	Body json.RawMessage
}

// InsertManyInput defines the input for a bulk insert
type InsertManyInput struct {
	Kind    dnd5e.Kind
	Records []dnd5e.Record
}

// InsertResult reports what happened to one record
type InsertResult struct {
	ID        string
	Name      string
	Duplicate bool
}

// InsertManyOutput defines the output for a bulk insert
type InsertManyOutput struct {
	Results []InsertResult
}

// Inserted counts the records actually written
func (o *InsertManyOutput) Inserted() int {
	n := 0
	for _, r := range o.Results {
		if !r.Duplicate {
			n++
		}
	}
	return n
}

// Duplicates counts the records skipped as existing
func (o *InsertManyOutput) Duplicates() int {
	return len(o.Results) - o.Inserted()
}

// FindAllInput defines the input for listing a kind
type FindAllInput struct {
	Kind dnd5e.Kind
}

// FindAllOutput defines the output for listing a kind
type FindAllOutput struct {
	Documents []*Document
}

// FindByFieldInput defines the input for an equality lookup
type FindByFieldInput struct {
	Kind  dnd5e.Kind
	Field string
	Value string
}

// FindByFieldOutput defines the output for an equality lookup
type FindByFieldOutput struct {
	Documents []*Document
}

// CountInput defines the input for counting a kind
type CountInput struct {
	Kind dnd5e.Kind
}

// CountOutput defines the output for counting a kind
type CountOutput struct {
	Count int64
}
