package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/dom/league-build-planner/internal/api/handlers"
	"github.com/dom/league-build-planner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavouriteHandler(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)
	build := testutil.NewBuildBuilder().Build(t, ts.DB.DB)
	url := ts.APIURL(fmt.Sprintf("/favourites/%d", build.ID))

	resp := testutil.DoRequest(t, http.MethodPost, url, token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	resp = testutil.DoRequest(t, http.MethodPost, url, token, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusConflict, "Build already in favourites")

	resp = testutil.DoRequest(t, http.MethodGet, ts.APIURL("/favourites"), token, nil)
	defer resp.Body.Close()
	var favourites []handlers.FavouriteResponse
	testutil.AssertJSONResponse(t, resp, &favourites)
	require.Len(t, favourites, 1)
	assert.Equal(t, user.ID, favourites[0].UserID)
	assert.Equal(t, build.ID, favourites[0].BuildID)

	resp = testutil.DoRequest(t, http.MethodDelete, url, token, nil)
	defer resp.Body.Close()
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	var result handlers.MessageResponse
	testutil.AssertJSONResponse(t, resp, &result)
	assert.Equal(t, "Favourite discarded successfully", result.Message)

	resp = testutil.DoRequest(t, http.MethodDelete, url, token, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Build not found in favourites")

	resp = testutil.DoRequest(t, http.MethodPost, ts.APIURL("/favourites/9999"), token, nil)
	defer resp.Body.Close()
	testutil.AssertErrorResponse(t, resp, http.StatusNotFound, "Build not found")
}
