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

func TestUserRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := gormrepo.NewUserRepository(testDB.DB)
	ctx := context.Background()

	newUser := func(username, nick string) *domain.User {
		return &domain.User{
			Username:     username,
			Nick:         nick,
			PasswordHash: "hash",
			Gender:       domain.GenderFemale,
			Rank:         domain.RankMaster,
			MainRole:     domain.LaneSupport,
		}
	}

	tests := []struct {
		name    string
		setup   func()
		user    *domain.User
		wantErr error
	}{
		{
			name: "creates a user",
			user: newUser("newuser", "newnick"),
		},
		{
			name: "duplicate username",
			setup: func() {
				testutil.NewUserBuilder().WithUsername("taken").Build(t, testDB.DB)
			},
			user:    newUser("taken", "freshnick"),
			wantErr: gorm.ErrDuplicatedKey,
		},
		{
			name: "duplicate nick",
			setup: func() {
				testutil.NewUserBuilder().WithNick("takennick").Build(t, testDB.DB)
			},
			user:    newUser("freshuser", "takennick"),
			wantErr: gorm.ErrDuplicatedKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			err := repo.Create(ctx, tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			got, err := repo.GetByUsername(ctx, tt.user.Username)
			require.NoError(t, err)
			assert.Equal(t, tt.user.ID, got.ID)
			assert.Equal(t, domain.RankMaster, got.Rank)
			assert.Equal(t, domain.LaneSupport, got.MainRole)
		})
	}
}

func TestChampionRepository_PreloadsStats(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := gormrepo.NewChampionRepository(testDB.DB)
	ctx := context.Background()

	champion := testutil.NewChampionBuilder().WithName("Jinx").WithLane(domain.LaneADCarry).Build(t, testDB.DB)

	got, err := repo.GetByID(ctx, champion.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Stats)
	assert.Equal(t, champion.StatsID, got.Stats.ID)
	assert.Equal(t, domain.LaneADCarry, got.Lane)

	byName, err := repo.GetByName(ctx, "Jinx")
	require.NoError(t, err)
	assert.Equal(t, champion.ID, byName.ID)

	_, err = repo.GetByID(ctx, champion.ID+1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
