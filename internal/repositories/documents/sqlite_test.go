package documents_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils"
)

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := documents.OpenSQLite(context.Background(), " ")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewSQLiteValidatesConfig(t *testing.T) {
	_, err := documents.NewSQLite(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = documents.NewSQLite(&documents.SQLiteConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := testutils.TestSQLitePath(t)

	db, err := documents.OpenSQLite(ctx, path)
	require.NoError(t, err)
	repo, err := documents.NewSQLite(&documents.SQLiteConfig{DB: db, IDGenerator: idgen.NewSequential()})
	require.NoError(t, err)

	_, err = repo.InsertMany(ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindAlignment,
		Records: []dnd5e.Record{&dnd5e.Alignment{Name: "Lawful Good", Abbreviation: "LG"}},
	})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// schema application is repeatable and data persists
	db, err = documents.OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo, err = documents.NewSQLite(&documents.SQLiteConfig{DB: db, IDGenerator: idgen.NewSequential()})
	require.NoError(t, err)

	out, err := repo.InsertMany(ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindAlignment,
		Records: []dnd5e.Record{&dnd5e.Alignment{Name: "Lawful Good", Abbreviation: "LG"}},
	})
	require.NoError(t, err)
	require.Len(t, out.Results, 1)
	assert.True(t, out.Results[0].Duplicate)
	assert.Equal(t, "alignment_1", out.Results[0].ID)

	count, err := repo.Count(ctx, documents.CountInput{Kind: dnd5e.KindAlignment})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)
}

func TestSQLitePingAfterClose(t *testing.T) {
	db, err := documents.OpenSQLite(context.Background(), testutils.TestSQLitePath(t))
	require.NoError(t, err)
	repo, err := documents.NewSQLite(&documents.SQLiteConfig{DB: db})
	require.NoError(t, err)

	require.NoError(t, repo.Ping(context.Background()))
	require.NoError(t, db.Close())

	assert.True(t, errors.IsUnavailable(repo.Ping(context.Background())))
}

func TestSQLiteFailedInsertLeavesRecordIDs(t *testing.T) {
	ctx := context.Background()
	db, err := documents.OpenSQLite(ctx, testutils.TestSQLitePath(t))
	require.NoError(t, err)
	repo, err := documents.NewSQLite(&documents.SQLiteConfig{DB: db, IDGenerator: idgen.NewSequential()})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	alignment := &dnd5e.Alignment{Name: "True Neutral", Abbreviation: "N"}
	_, err = repo.InsertMany(ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindAlignment,
		Records: []dnd5e.Record{alignment},
	})
	require.Error(t, err)
	assert.Empty(t, alignment.ID)
}
