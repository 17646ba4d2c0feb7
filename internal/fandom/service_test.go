package fandom_test

import (
	"context"
	"testing"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/fandom"
	"github.com/dom/league-build-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_PlanetFavorites(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc := fandom.NewService(fandom.NewRepository(testDB.DB))
	ctx := context.Background()

	tests := []struct {
		name    string
		user    func(f *testutil.FanFixtures) uint
		planet  func(f *testutil.FanFixtures) uint
		setup   func(f *testutil.FanFixtures)
		wantErr error
	}{
		{
			name:   "added",
			user:   func(f *testutil.FanFixtures) uint { return f.User.ID },
			planet: func(f *testutil.FanFixtures) uint { return f.Planet.ID },
		},
		{
			name:    "missing user id",
			user:    func(f *testutil.FanFixtures) uint { return 0 },
			planet:  func(f *testutil.FanFixtures) uint { return f.Planet.ID },
			wantErr: fandom.ErrMissingUserID,
		},
		{
			name:    "unknown planet",
			user:    func(f *testutil.FanFixtures) uint { return f.User.ID },
			planet:  func(f *testutil.FanFixtures) uint { return f.Planet.ID + 100 },
			wantErr: fandom.ErrPlanetNotFound,
		},
		{
			name:    "unknown user",
			user:    func(f *testutil.FanFixtures) uint { return f.User.ID + 100 },
			planet:  func(f *testutil.FanFixtures) uint { return f.Planet.ID },
			wantErr: fandom.ErrUserNotFound,
		},
		{
			name:   "already a favorite",
			user:   func(f *testutil.FanFixtures) uint { return f.User.ID },
			planet: func(f *testutil.FanFixtures) uint { return f.Planet.ID },
			setup: func(f *testutil.FanFixtures) {
				_, err := svc.AddPlanetFavorite(ctx, f.User.ID, f.Planet.ID)
				require.NoError(t, err)
			},
			wantErr: fandom.ErrPlanetFavoriteExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)
			fixtures := testutil.NewFanFixtures(t, testDB.DB)
			if tt.setup != nil {
				tt.setup(fixtures)
			}

			favorite, err := svc.AddPlanetFavorite(ctx, tt.user(fixtures), tt.planet(fixtures))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, favorite.PlanetID)
			assert.Equal(t, fixtures.Planet.ID, *favorite.PlanetID)
			assert.Nil(t, favorite.CharacterID)
		})
	}
}

func TestService_CharacterFavorites(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc := fandom.NewService(fandom.NewRepository(testDB.DB))
	ctx := context.Background()
	fixtures := testutil.NewFanFixtures(t, testDB.DB)

	_, err := svc.ListFavorites(ctx, fixtures.User.ID)
	assert.ErrorIs(t, err, fandom.ErrNoFavorites)

	_, err = svc.AddCharacterFavorite(ctx, fixtures.User.ID, fixtures.Character.ID)
	require.NoError(t, err)

	_, err = svc.AddCharacterFavorite(ctx, fixtures.User.ID, fixtures.Character.ID)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))

	// Planet and character favourites are tracked separately
	_, err = svc.AddPlanetFavorite(ctx, fixtures.User.ID, fixtures.Planet.ID)
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(ctx, fixtures.User.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 2)

	require.NoError(t, svc.RemoveCharacterFavorite(ctx, fixtures.User.ID, fixtures.Character.ID))

	err = svc.RemoveCharacterFavorite(ctx, fixtures.User.ID, fixtures.Character.ID)
	assert.ErrorIs(t, err, fandom.ErrCharacterNotInFavorites)

	favorites, err = svc.ListFavorites(ctx, fixtures.User.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.NotNil(t, favorites[0].PlanetID)
}

func TestService_Lookups(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	svc := fandom.NewService(fandom.NewRepository(testDB.DB))
	ctx := context.Background()
	fixtures := testutil.NewFanFixtures(t, testDB.DB)

	character, err := svc.GetCharacter(ctx, fixtures.Character.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rebel Alliance", character.Faction.Label())
	assert.Equal(t, "Hero", character.Type.Label())

	_, err = svc.GetCharacter(ctx, fixtures.Character.ID+100)
	assert.ErrorIs(t, err, fandom.ErrCharacterNotFound)

	_, err = svc.GetPlanet(ctx, fixtures.Planet.ID+100)
	assert.ErrorIs(t, err, fandom.ErrPlanetNotFound)

	planets, err := svc.ListPlanets(ctx)
	require.NoError(t, err)
	assert.Len(t, planets, 1)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
