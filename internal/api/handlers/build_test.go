package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/league-build-planner/internal/api/handlers"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	tests := []struct {
		name            string
		request         func(championID uint) map[string]interface{}
		setup           func(champion *domain.Champion)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "successful creation",
			request: func(championID uint) map[string]interface{} {
				return map[string]interface{}{"title": "Lethality", "description": "Burst", "champion_id": championID}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing title",
			request: func(championID uint) map[string]interface{} {
				return map[string]interface{}{"description": "Burst", "champion_id": championID}
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Missing required fields",
		},
		{
			name: "unknown champion",
			request: func(championID uint) map[string]interface{} {
				return map[string]interface{}{"title": "Lethality", "description": "Burst", "champion_id": championID + 100}
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Champion not found",
		},
		{
			name: "title already used",
			request: func(championID uint) map[string]interface{} {
				return map[string]interface{}{"title": "Taken", "description": "Burst", "champion_id": championID}
			},
			setup: func(champion *domain.Champion) {
				testutil.NewBuildBuilder().WithTitle("Taken").WithChampion(champion).Build(t, ts.DB.DB)
			},
			expectedStatus:  http.StatusConflict,
			expectedMessage: "Build title already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts.DB.Truncate(t)

			user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
			champion := testutil.NewChampionBuilder().Build(t, ts.DB.DB)
			if tt.setup != nil {
				tt.setup(champion)
			}

			resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/builds"), token, tt.request(champion.ID))
			defer resp.Body.Close()

			if tt.expectedMessage != "" {
				testutil.AssertErrorResponse(t, resp, tt.expectedStatus, tt.expectedMessage)
				return
			}

			testutil.AssertStatusCode(t, resp, tt.expectedStatus)
			var result handlers.CreateBuildResponse
			testutil.AssertJSONResponse(t, resp, &result)
			assert.True(t, result.Success)
			assert.Equal(t, "Lethality", result.Build.Title)
			assert.Equal(t, user.ID, result.Build.UserID)
			assert.Equal(t, time.Now().UTC().Format("2006-01-02"), result.Build.CreationDate)
			assert.Empty(t, result.Build.Items)
		})
	}
}

func TestBuildHandler_CreateRequiresToken(t *testing.T) {
	ts := testutil.NewTestServer(t)

	resp := testutil.DoRequest(t, http.MethodPost, ts.APIURL("/builds"), "", map[string]interface{}{"title": "x"})
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Missing Authorization Header")
}

func TestBuildHandler_Get(t *testing.T) {
	ts := testutil.NewTestServer(t)

	first := testutil.NewItemBuilder().WithName("Doran's Blade").Build(t, ts.DB.DB)
	second := testutil.NewItemBuilder().WithName("Infinity Edge").Build(t, ts.DB.DB)
	build := testutil.NewBuildBuilder().WithTitle("Crit").WithItems(first, second).Build(t, ts.DB.DB)

	t.Run("items in position order with author", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/builds/%d", build.ID)), "", nil)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)
		var result handlers.BuildResponse
		testutil.AssertJSONResponse(t, resp, &result)
		assert.Equal(t, "Crit", result.Title)
		require.NotNil(t, result.User)
		assert.Equal(t, build.UserID, result.User.ID)
		require.Len(t, result.Items, 2)
		assert.Equal(t, 1, result.Items[0].Position)
		assert.Equal(t, "Doran's Blade", result.Items[0].Name)
		assert.Equal(t, "Infinity Edge", result.Items[1].Name)
	})

	t.Run("list", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodGet, ts.APIURL("/builds"), "", nil)
		defer resp.Body.Close()

		var result []handlers.BuildResponse
		testutil.AssertJSONResponse(t, resp, &result)
		require.Len(t, result, 1)
		assert.Len(t, result[0].Items, 2)
	})

	t.Run("unknown build", func(t *testing.T) {
		resp := testutil.DoRequest(t, http.MethodGet, ts.APIURL("/builds/9999"), "", nil)
		defer resp.Body.Close()
		testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Build not found")
	})
}

func TestBuildHandler_Delete(t *testing.T) {
	ts := testutil.NewTestServer(t)

	owner, ownerToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	_, otherToken := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	build := testutil.NewBuildBuilder().WithOwner(owner).WithTitle("Mine").Build(t, ts.DB.DB)
	url := ts.APIURL(fmt.Sprintf("/builds/%d", build.ID))

	resp := testutil.DoRequest(t, http.MethodDelete, url, otherToken, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusForbidden, "Unauthorized: You can only delete your own builds")

	resp = testutil.DoRequest(t, http.MethodDelete, url, ownerToken, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var result handlers.MessageResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.True(t, result.Success)
	assert.Equal(t, "Build 'Mine' deleted successfully", result.Message)

	resp = testutil.DoRequest(t, http.MethodGet, url, "", nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusNotFound)

	resp = testutil.DoRequest(t, http.MethodDelete, url, ownerToken, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Build not found")
}
