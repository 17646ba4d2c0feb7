package handlers

import (
	"net/http"

	"github.com/dom/league-build-planner/internal/api/middleware"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/service"
	"go.uber.org/zap"
)

type FavouriteHandler struct {
	favouriteService *service.FavouriteService
	logger           *zap.Logger
}

func NewFavouriteHandler(favouriteService *service.FavouriteService, logger *zap.Logger) *FavouriteHandler {
	return &FavouriteHandler{favouriteService: favouriteService, logger: logger}
}

type FavouriteResponse struct {
	UserID  uint `json:"user_id"`
	BuildID uint `json:"build_id"`
}

func (h *FavouriteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	favourites, err := h.favouriteService.List(r.Context(), userID)
	if err != nil {
		respondError(w, h.logger, "favourite.List", err, zap.Uint("userID", userID))
		return
	}

	resp := make([]FavouriteResponse, len(favourites))
	for i, f := range favourites {
		resp[i] = FavouriteResponse{UserID: f.UserID, BuildID: f.BuildID}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FavouriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	buildID, ok := urlID(r, "buildID")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrBuildNotFound.Msg)
		return
	}

	if _, err := h.favouriteService.Add(r.Context(), userID, buildID); err != nil {
		respondError(w, h.logger, "favourite.Add", err, zap.Uint("userID", userID), zap.Uint("buildID", buildID))
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: "Build added to favourites"})
}

func (h *FavouriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	buildID, ok := urlID(r, "buildID")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrFavouriteNotFound.Msg)
		return
	}

	if err := h.favouriteService.Remove(r.Context(), userID, buildID); err != nil {
		respondError(w, h.logger, "favourite.Remove", err, zap.Uint("userID", userID), zap.Uint("buildID", buildID))
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Favourite discarded successfully"})
}
