package gormrepo_test

import (
	"context"
	"testing"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository/gormrepo"
	"github.com/dom/league-build-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildItemRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := gormrepo.NewBuildItemRepository(testDB.DB)
	ctx := context.Background()

	t.Run("entries come back ordered by position with items loaded", func(t *testing.T) {
		testDB.Truncate(t)

		sword := testutil.NewItemBuilder().WithName("Long Sword").Build(t, testDB.DB)
		tome := testutil.NewItemBuilder().WithName("Amplifying Tome").Build(t, testDB.DB)
		build := testutil.NewBuildBuilder().Build(t, testDB.DB)

		require.NoError(t, repo.Create(ctx, &domain.BuildItem{BuildID: build.ID, ItemID: tome.ID, ItemPosition: 2}))
		require.NoError(t, repo.Create(ctx, &domain.BuildItem{BuildID: build.ID, ItemID: sword.ID, ItemPosition: 1}))

		entries, err := repo.GetByBuildID(ctx, build.ID)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 1, entries[0].ItemPosition)
		assert.Equal(t, "Long Sword", entries[0].Item.Name)
		assert.Equal(t, 2, entries[1].ItemPosition)
		assert.Equal(t, "Amplifying Tome", entries[1].Item.Name)

		count, err := repo.CountByBuildID(ctx, build.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("GetFirst returns the lowest position", func(t *testing.T) {
		testDB.Truncate(t)

		item := testutil.NewItemBuilder().Build(t, testDB.DB)
		build := testutil.NewBuildBuilder().WithItems(item, item).Build(t, testDB.DB)

		first, err := repo.GetFirst(ctx, build.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, first.ItemPosition)

		require.NoError(t, repo.Delete(ctx, first.ID))

		next, err := repo.GetFirst(ctx, build.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, next.ItemPosition)

		_, err = repo.GetFirst(ctx, build.ID, item.ID+100)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("GetByOwnerID only returns the owner's builds", func(t *testing.T) {
		testDB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		item := testutil.NewItemBuilder().Build(t, testDB.DB)

		mine := testutil.NewBuildBuilder().WithOwner(owner).WithItems(item).Build(t, testDB.DB)
		testutil.NewBuildBuilder().WithOwner(other).WithItems(item).Build(t, testDB.DB)

		entries, err := repo.GetByOwnerID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, mine.ID, entries[0].BuildID)
	})

	t.Run("GetByBuildIDs groups by build", func(t *testing.T) {
		testDB.Truncate(t)

		item := testutil.NewItemBuilder().Build(t, testDB.DB)
		a := testutil.NewBuildBuilder().WithItems(item, item).Build(t, testDB.DB)
		b := testutil.NewBuildBuilder().WithItems(item).Build(t, testDB.DB)
		empty := testutil.NewBuildBuilder().Build(t, testDB.DB)

		grouped, err := repo.GetByBuildIDs(ctx, []uint{a.ID, b.ID, empty.ID})
		require.NoError(t, err)
		assert.Len(t, grouped[a.ID], 2)
		assert.Len(t, grouped[b.ID], 1)
		assert.Empty(t, grouped[empty.ID])
	})

	t.Run("Delete of a missing entry reports not found", func(t *testing.T) {
		testDB.Truncate(t)

		err := repo.Delete(ctx, 9999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
