package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

// NewTestRedisRepository creates a Redis document repository over miniredis
// with sequential ids (class_1, class_2, ...)
func NewTestRedisRepository(t *testing.T) (documents.Repository, func()) {
	client, cleanup := CreateTestRedisClient(t)

	repo, err := documents.NewRedis(&documents.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential(),
	})
	require.NoError(t, err, "failed to create redis repository")

	return repo, cleanup
}

// NewSeededRedisRepository is NewTestRedisRepository with the full catalog
// already seeded
func NewSeededRedisRepository(t *testing.T) (documents.Repository, func()) {
	repo, cleanup := NewTestRedisRepository(t)
	SeedCatalog(t, repo)
	return repo, cleanup
}

// SeedCatalog runs the seed pipeline against repo and fails the test if it
// does not complete
func SeedCatalog(t *testing.T, repo documents.Repository) *seed.SeedAllOutput {
	seeder, err := seed.NewOrchestrator(&seed.Config{Repository: repo})
	require.NoError(t, err, "failed to create seeder")

	out, err := seeder.SeedAll(context.Background(), &seed.SeedAllInput{})
	require.NoError(t, err, "failed to seed catalog")
	require.False(t, out.Skipped, "store was already seeded")

	return out
}
