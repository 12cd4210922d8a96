package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
)

func TestResolver(t *testing.T) {
	res := seed.NewResolver()
	res.Remember(dnd5e.KindClass, "bard", "class_1")
	res.Remember(dnd5e.KindClass, "wizard", "class_2")
	res.Remember(dnd5e.KindRace, "bard", "race_9")

	t.Run("resolves by kind and name", func(t *testing.T) {
		id, err := res.Resolve(dnd5e.KindClass, "bard")
		require.NoError(t, err)
		assert.Equal(t, "class_1", id)

		id, err = res.Resolve(dnd5e.KindRace, "bard")
		require.NoError(t, err)
		assert.Equal(t, "race_9", id)
	})

	t.Run("last write wins", func(t *testing.T) {
		local := seed.NewResolver()
		local.Remember(dnd5e.KindClass, "monk", "class_1")
		local.Remember(dnd5e.KindClass, "monk", "class_7")

		id, err := local.Resolve(dnd5e.KindClass, "monk")
		require.NoError(t, err)
		assert.Equal(t, "class_7", id)
		assert.Equal(t, 1, local.Len(dnd5e.KindClass))
	})

	t.Run("unknown name is a failed precondition", func(t *testing.T) {
		_, err := res.Resolve(dnd5e.KindClass, "artificer")
		require.Error(t, err)
		assert.True(t, errors.IsFailedPrecondition(err))

		meta := errors.GetMeta(err)
		assert.Equal(t, "class", meta["kind"])
		assert.Equal(t, "artificer", meta["name"])
	})

	t.Run("resolve all keeps order", func(t *testing.T) {
		ids, err := res.ResolveAll(dnd5e.KindClass, []string{"wizard", "bard"})
		require.NoError(t, err)
		assert.Equal(t, []string{"class_2", "class_1"}, ids)

		ids, err = res.ResolveAll(dnd5e.KindClass, nil)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("resolve all fails on the first unknown name", func(t *testing.T) {
		_, err := res.ResolveAll(dnd5e.KindClass, []string{"bard", "druid", "cleric"})
		require.Error(t, err)
		assert.Equal(t, "druid", errors.GetMeta(err)["name"])
	})
}
