package service_test

import (
	"context"
	"testing"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository/gormrepo"
	"github.com/dom/league-build-planner/internal/service"
	"github.com/dom/league-build-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavouriteService(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := gormrepo.NewRepositories(testDB.DB)
	favouriteService := service.NewFavouriteService(repos.User, repos.Build, repos.Favourite)
	ctx := context.Background()

	t.Run("adding twice conflicts", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		build := testutil.NewBuildBuilder().Build(t, testDB.DB)

		_, err := favouriteService.Add(ctx, user.ID, build.ID)
		require.NoError(t, err)

		_, err = favouriteService.Add(ctx, user.ID, build.ID)
		assert.ErrorIs(t, err, domain.ErrFavouriteExists)

		favourites, err := favouriteService.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Len(t, favourites, 1)
	})

	t.Run("unknown build", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		_, err := favouriteService.Add(ctx, user.ID, 999)
		assert.ErrorIs(t, err, domain.ErrBuildNotFound)
	})

	t.Run("remove then remove again", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
		build := testutil.NewBuildBuilder().Build(t, testDB.DB)

		_, err := favouriteService.Add(ctx, user.ID, build.ID)
		require.NoError(t, err)

		require.NoError(t, favouriteService.Remove(ctx, user.ID, build.ID))

		err = favouriteService.Remove(ctx, user.ID, build.ID)
		assert.ErrorIs(t, err, domain.ErrFavouriteNotFound)
	})

	t.Run("empty list", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

		favourites, err := favouriteService.List(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, favourites)
	})
}
