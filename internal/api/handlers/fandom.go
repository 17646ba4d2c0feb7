package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dom/league-build-planner/internal/fandom"
	"go.uber.org/zap"
)

type FandomHandler struct {
	fandomService *fandom.Service
	logger        *zap.Logger
}

func NewFandomHandler(fandomService *fandom.Service, logger *zap.Logger) *FandomHandler {
	return &FandomHandler{fandomService: fandomService, logger: logger}
}

type FanUserResponse struct {
	ID        uint   `json:"ID"`
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

type CharacterResponse struct {
	ID       uint   `json:"ID"`
	Fullname string `json:"fullname"`
	Age      int    `json:"age"`
	Faction  string `json:"faction"`
	Type     string `json:"type"`
}

type PlanetResponse struct {
	ID        uint    `json:"ID"`
	Name      string  `json:"name"`
	Size      float64 `json:"size"`
	Inhabited bool    `json:"inhabited"`
	Distance  float64 `json:"distance"`
}

type FavoriteResponse struct {
	ID          uint  `json:"ID"`
	UserID      uint  `json:"user_id"`
	PlanetID    *uint `json:"planet_id"`
	CharacterID *uint `json:"character_id"`
}

type FavoriteRequest struct {
	UserID uint `json:"user_id"`
}

type FandomMessageResponse struct {
	Message string `json:"message"`
}

func toCharacterResponse(c *fandom.Character) CharacterResponse {
	return CharacterResponse{
		ID:       c.ID,
		Fullname: c.Fullname,
		Age:      c.Age,
		Faction:  c.Faction.Label(),
		Type:     c.Type.Label(),
	}
}

func toPlanetResponse(p *fandom.Planet) PlanetResponse {
	return PlanetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Size:      p.Size,
		Inhabited: p.Inhabited,
		Distance:  p.Distance,
	}
}

func (h *FandomHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	characters, err := h.fandomService.ListCharacters(r.Context())
	if err != nil {
		respondError(w, h.logger, "fandom.ListPeople", err)
		return
	}

	resp := make([]CharacterResponse, len(characters))
	for i, c := range characters {
		resp[i] = toCharacterResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FandomHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, fandom.ErrCharacterNotFound.Msg)
		return
	}

	character, err := h.fandomService.GetCharacter(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "fandom.GetPerson", err, zap.Uint("characterID", id))
		return
	}
	writeJSON(w, http.StatusOK, toCharacterResponse(character))
}

func (h *FandomHandler) ListPlanets(w http.ResponseWriter, r *http.Request) {
	planets, err := h.fandomService.ListPlanets(r.Context())
	if err != nil {
		respondError(w, h.logger, "fandom.ListPlanets", err)
		return
	}

	resp := make([]PlanetResponse, len(planets))
	for i, p := range planets {
		resp[i] = toPlanetResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FandomHandler) GetPlanet(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, fandom.ErrPlanetNotFound.Msg)
		return
	}

	planet, err := h.fandomService.GetPlanet(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "fandom.GetPlanet", err, zap.Uint("planetID", id))
		return
	}
	writeJSON(w, http.StatusOK, toPlanetResponse(planet))
}

func (h *FandomHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.fandomService.ListUsers(r.Context())
	if err != nil {
		respondError(w, h.logger, "fandom.ListUsers", err)
		return
	}

	resp := make([]FanUserResponse, len(users))
	for i, u := range users {
		resp[i] = FanUserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Firstname: u.Firstname,
			Lastname:  u.Lastname,
			Email:     u.Email,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListFavorites reads the user from the user_id query parameter
func (h *FandomHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)

	favorites, err := h.fandomService.ListFavorites(r.Context(), uint(userID))
	if err != nil {
		respondError(w, h.logger, "fandom.ListFavorites", err, zap.Uint64("userID", userID))
		return
	}

	resp := make([]FavoriteResponse, len(favorites))
	for i, f := range favorites {
		resp[i] = FavoriteResponse{
			ID:          f.ID,
			UserID:      f.UserID,
			PlanetID:    f.PlanetID,
			CharacterID: f.CharacterID,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *FandomHandler) AddPlanetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := h.favoriteParams(w, r, fandom.ErrPlanetNotFound.Msg)
	if !ok {
		return
	}
	if _, err := h.fandomService.AddPlanetFavorite(r.Context(), userID, planetID); err != nil {
		respondError(w, h.logger, "fandom.AddPlanetFavorite", err, zap.Uint("userID", userID), zap.Uint("planetID", planetID))
		return
	}
	writeJSON(w, http.StatusCreated, FandomMessageResponse{Message: "Planet added to favorites"})
}

func (h *FandomHandler) AddCharacterFavorite(w http.ResponseWriter, r *http.Request) {
	userID, characterID, ok := h.favoriteParams(w, r, fandom.ErrCharacterNotFound.Msg)
	if !ok {
		return
	}
	if _, err := h.fandomService.AddCharacterFavorite(r.Context(), userID, characterID); err != nil {
		respondError(w, h.logger, "fandom.AddCharacterFavorite", err, zap.Uint("userID", userID), zap.Uint("characterID", characterID))
		return
	}
	writeJSON(w, http.StatusCreated, FandomMessageResponse{Message: "Character added to favorites"})
}

func (h *FandomHandler) RemovePlanetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, planetID, ok := h.favoriteParams(w, r, fandom.ErrPlanetNotInFavorites.Msg)
	if !ok {
		return
	}
	if err := h.fandomService.RemovePlanetFavorite(r.Context(), userID, planetID); err != nil {
		respondError(w, h.logger, "fandom.RemovePlanetFavorite", err, zap.Uint("userID", userID), zap.Uint("planetID", planetID))
		return
	}
	writeJSON(w, http.StatusOK, FandomMessageResponse{Message: "Planet deleted from favorites"})
}

func (h *FandomHandler) RemoveCharacterFavorite(w http.ResponseWriter, r *http.Request) {
	userID, characterID, ok := h.favoriteParams(w, r, fandom.ErrCharacterNotInFavorites.Msg)
	if !ok {
		return
	}
	if err := h.fandomService.RemoveCharacterFavorite(r.Context(), userID, characterID); err != nil {
		respondError(w, h.logger, "fandom.RemoveCharacterFavorite", err, zap.Uint("userID", userID), zap.Uint("characterID", characterID))
		return
	}
	writeJSON(w, http.StatusOK, FandomMessageResponse{Message: "Character deleted from favorites"})
}

// favoriteParams reads the target id from the path and the user from the
// body. A missing or unreadable body is reported as a missing user_id.
func (h *FandomHandler) favoriteParams(w http.ResponseWriter, r *http.Request, notFound string) (userID, targetID uint, ok bool) {
	targetID, ok = urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, notFound)
		return 0, 0, false
	}

	var req FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, fandom.ErrMissingUserID.Msg)
		return 0, 0, false
	}
	return req.UserID, targetID, true
}
