package handlers

import (
	"net/http"

	"github.com/dom/league-build-planner/internal/api/middleware"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/service"
	"go.uber.org/zap"
)

type BuildItemHandler struct {
	buildService *service.BuildService
	logger       *zap.Logger
}

func NewBuildItemHandler(buildService *service.BuildService, logger *zap.Logger) *BuildItemHandler {
	return &BuildItemHandler{buildService: buildService, logger: logger}
}

type BuildItemResponse struct {
	BuildID      uint `json:"build_id"`
	ItemID       uint `json:"item_id"`
	ItemPosition int  `json:"item_position"`
}

// ListOwned returns the item entries of every build the caller authored
func (h *BuildItemHandler) ListOwned(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	entries, err := h.buildService.ListOwnedItems(r.Context(), userID)
	if err != nil {
		respondError(w, h.logger, "buildItem.ListOwned", err, zap.Uint("userID", userID))
		return
	}

	resp := make([]BuildItemResponse, len(entries))
	for i, e := range entries {
		resp[i] = BuildItemResponse{
			BuildID:      e.BuildID,
			ItemID:       e.ItemID,
			ItemPosition: e.ItemPosition,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BuildItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, buildID, itemID, ok := h.params(w, r)
	if !ok {
		return
	}

	if _, err := h.buildService.AddItem(r.Context(), userID, buildID, itemID); err != nil {
		respondError(w, h.logger, "buildItem.Add", err,
			zap.Uint("userID", userID), zap.Uint("buildID", buildID), zap.Uint("itemID", itemID))
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: "Item added to build"})
}

func (h *BuildItemHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, buildID, itemID, ok := h.params(w, r)
	if !ok {
		return
	}

	if err := h.buildService.RemoveItem(r.Context(), userID, buildID, itemID); err != nil {
		respondError(w, h.logger, "buildItem.Remove", err,
			zap.Uint("userID", userID), zap.Uint("buildID", buildID), zap.Uint("itemID", itemID))
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Item deleted from the build"})
}

func (h *BuildItemHandler) params(w http.ResponseWriter, r *http.Request) (userID, buildID, itemID uint, ok bool) {
	userID, ok = middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, 0, 0, false
	}
	if buildID, ok = urlID(r, "buildID"); !ok {
		writeError(w, http.StatusNotFound, domain.ErrBuildNotFound.Msg)
		return 0, 0, 0, false
	}
	if itemID, ok = urlID(r, "itemID"); !ok {
		writeError(w, http.StatusNotFound, domain.ErrItemNotFound.Msg)
		return 0, 0, 0, false
	}
	return userID, buildID, itemID, true
}
