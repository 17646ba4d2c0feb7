package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dom/league-build-planner/internal/api/middleware"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/service"
	"go.uber.org/zap"
)

type BuildHandler struct {
	buildService *service.BuildService
	logger       *zap.Logger
}

func NewBuildHandler(buildService *service.BuildService, logger *zap.Logger) *BuildHandler {
	return &BuildHandler{buildService: buildService, logger: logger}
}

type CreateBuildRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ChampionID  uint   `json:"champion_id"`
}

// BuildEntryResponse is an item as it appears inside a build
type BuildEntryResponse struct {
	Position int `json:"position"`
	ItemResponse
}

type BuildResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	ChampionID   uint                 `json:"champion_id"`
	UserID       uint                 `json:"user_id"`
	CreationDate string               `json:"creation_date"`
	User         *UserResponse        `json:"user"`
	Items        []BuildEntryResponse `json:"items"`
}

type CreateBuildResponse struct {
	Success bool          `json:"success"`
	Build   BuildResponse `json:"build"`
}

func toBuildResponse(d *service.BuildDetails) BuildResponse {
	b := d.Build
	resp := BuildResponse{
		ID:           b.ID,
		Title:        b.Title,
		Description:  b.Description,
		ChampionID:   b.ChampionID,
		UserID:       b.UserID,
		CreationDate: formatDate(time.Time(b.CreationDate)),
		Items:        make([]BuildEntryResponse, 0, len(d.Items)),
	}
	if b.User != nil {
		user := toUserResponse(b.User)
		resp.User = &user
	}
	for _, entry := range d.Items {
		if entry.Item == nil {
			continue
		}
		resp.Items = append(resp.Items, BuildEntryResponse{
			Position:     entry.ItemPosition,
			ItemResponse: toItemResponse(entry.Item),
		})
	}
	return resp
}

func (h *BuildHandler) List(w http.ResponseWriter, r *http.Request) {
	builds, err := h.buildService.List(r.Context())
	if err != nil {
		respondError(w, h.logger, "build.List", err)
		return
	}

	resp := make([]BuildResponse, len(builds))
	for i, b := range builds {
		resp[i] = toBuildResponse(b)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *BuildHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrBuildNotFound.Msg)
		return
	}

	build, err := h.buildService.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "build.Get", err, zap.Uint("buildID", id))
		return
	}
	writeJSON(w, http.StatusOK, toBuildResponse(build))
}

func (h *BuildHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateBuildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, domain.ErrMissingBuildFields.Msg)
		return
	}

	build, err := h.buildService.Create(r.Context(), service.CreateBuildInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		ChampionID:  req.ChampionID,
	})
	if err != nil {
		respondError(w, h.logger, "build.Create", err,
			zap.Uint("userID", userID), zap.Uint("championID", req.ChampionID))
		return
	}

	writeJSON(w, http.StatusCreated, CreateBuildResponse{
		Success: true,
		Build:   toBuildResponse(build),
	})
}

func (h *BuildHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrBuildNotFound.Msg)
		return
	}

	build, err := h.buildService.Delete(r.Context(), userID, id)
	if err != nil {
		respondError(w, h.logger, "build.Delete", err, zap.Uint("userID", userID), zap.Uint("buildID", id))
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Build '%s' deleted successfully", build.Title),
	})
}
