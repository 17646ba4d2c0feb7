package gormrepo_test

import (
	"context"
	"testing"

	"github.com/dom/league-build-planner/internal/config"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
	"github.com/dom/league-build-planner/internal/repository/gormrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gormrepo.NewConnection(&config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseURL:    "file::memory:",
	})
	require.NoError(t, err)
	require.NoError(t, gormrepo.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	_, err := gormrepo.NewConnection(&config.Config{DatabaseDriver: "oracle", DatabaseURL: "x"})
	assert.Error(t, err)
}

func TestSQLite_DuplicateUsernameIsTranslated(t *testing.T) {
	db := newSQLiteDB(t)
	repos := gormrepo.NewRepositories(db)
	ctx := context.Background()

	first := &domain.User{Username: "alice", Nick: "alice", PasswordHash: "x", Gender: domain.GenderNA, Rank: domain.RankNA, MainRole: domain.LaneNA}
	require.NoError(t, repos.User.Create(ctx, first))

	second := &domain.User{Username: "alice", Nick: "other", PasswordHash: "x", Gender: domain.GenderNA, Rank: domain.RankNA, MainRole: domain.LaneNA}
	err := repos.User.Create(ctx, second)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestSQLite_BuildDeleteCascades(t *testing.T) {
	db := newSQLiteDB(t)
	repos := gormrepo.NewRepositories(db)
	ctx := context.Background()

	user := &domain.User{Username: "bob", Nick: "bob", PasswordHash: "x", Gender: domain.GenderNA, Rank: domain.RankNA, MainRole: domain.LaneNA}
	require.NoError(t, repos.User.Create(ctx, user))

	champion := &domain.Champion{Name: "Ahri", Lane: domain.LaneMid, Type: "Mage", Media: "ahri.png", Stats: &domain.Stats{AP: 10}}
	require.NoError(t, repos.Champion.Create(ctx, champion))
	assert.NotZero(t, champion.StatsID)

	item := &domain.Item{Name: "Tome", Price: 400, Description: "AP", Media: "tome.png", Stats: &domain.Stats{AP: 20}}
	require.NoError(t, repos.Item.Create(ctx, item))

	build := domain.NewBuild(user.ID, champion.ID, "Burst Ahri", "one shot")
	require.NoError(t, repos.Build.Create(ctx, build))
	require.NoError(t, repos.BuildItem.Create(ctx, &domain.BuildItem{BuildID: build.ID, ItemID: item.ID, ItemPosition: 1}))
	require.NoError(t, repos.Favourite.Create(ctx, &domain.Favourite{UserID: user.ID, BuildID: build.ID}))

	require.NoError(t, repos.Build.Delete(ctx, build.ID))

	count, err := repos.BuildItem.CountByBuildID(ctx, build.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	favourites, err := repos.Favourite.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, favourites)
}

func TestSQLite_TransactionRollsBack(t *testing.T) {
	db := newSQLiteDB(t)
	repos := gormrepo.NewRepositories(db)
	ctx := context.Background()

	err := repos.Tx.WithinTransaction(ctx, func(tx *repository.Repositories) error {
		user := &domain.User{Username: "carol", Nick: "carol", PasswordHash: "x", Gender: domain.GenderNA, Rank: domain.RankNA, MainRole: domain.LaneNA}
		if err := tx.User.Create(ctx, user); err != nil {
			return err
		}
		return domain.ErrBuildNotFound
	})
	assert.ErrorIs(t, err, domain.ErrBuildNotFound)

	_, err = repos.User.GetByUsername(ctx, "carol")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
