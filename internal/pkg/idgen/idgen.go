// Package idgen provides the identifiers the document store assigns to records
package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator generates unique identifiers scoped by a prefix (the record kind)
type Generator interface {
	Generate(prefix string) string
}

// UUIDGenerator generates UUIDs with the prefix prepended
type UUIDGenerator struct{}

// NewUUID creates a new UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate(prefix string) string {
	id := uuid.New().String()
	if prefix != "" {
		return fmt.Sprintf("%s_%s", prefix, id)
	}
	return id
}

// SequentialGenerator generates per-prefix sequential IDs for tests
type SequentialGenerator struct {
	mu       sync.Mutex
	counters map[string]uint64
}

// NewSequential creates a new sequential generator
func NewSequential() *SequentialGenerator {
	return &SequentialGenerator{counters: make(map[string]uint64)}
}

// Generate returns prefix_N where N counts from 1 for each prefix
func (g *SequentialGenerator) Generate(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counters[prefix]++
	n := g.counters[prefix]
	if prefix != "" {
		return fmt.Sprintf("%s_%d", prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
