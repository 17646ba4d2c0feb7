package handlers

import (
	"net/http"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/service"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
	logger         *zap.Logger
}

func NewCatalogHandler(catalogService *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, logger: logger}
}

type StatsResponse struct {
	ID        uint    `json:"id"`
	AD        int     `json:"ad"`
	AP        int     `json:"ap"`
	HP        int     `json:"hp"`
	HPRegen   int     `json:"hpreg"`
	Mana      int     `json:"mana"`
	ManaRegen int     `json:"manareg"`
	AtkSpeed  float64 `json:"atspeed"`
	Lifesteal int     `json:"lifesteal"`
	SpellVamp int     `json:"spellvamp"`
	Crit      int     `json:"crit"`
	CD        int     `json:"cd"`
	Armor     int     `json:"armor"`
	MResist   int     `json:"mresist"`
	ArmorPen  int     `json:"armorpen"`
	MagicPen  int     `json:"magicpen"`
	Lethal    int     `json:"lethal"`
	MoveSpeed int     `json:"mvspeed"`
}

type ChampionResponse struct {
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Lane  string         `json:"lane"`
	Type  string         `json:"type"`
	Media string         `json:"media"`
	Stats *StatsResponse `json:"stats"`
}

type ItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	StatsID     uint   `json:"stats_id"`
	Description string `json:"description"`
	Media       string `json:"media"`
}

func toStatsResponse(s *domain.Stats) StatsResponse {
	return StatsResponse{
		ID:        s.ID,
		AD:        s.AD,
		AP:        s.AP,
		HP:        s.HP,
		HPRegen:   s.HPRegen,
		Mana:      s.Mana,
		ManaRegen: s.ManaRegen,
		AtkSpeed:  s.AtkSpeed,
		Lifesteal: s.Lifesteal,
		SpellVamp: s.SpellVamp,
		Crit:      s.Crit,
		CD:        s.CD,
		Armor:     s.Armor,
		MResist:   s.MResist,
		ArmorPen:  s.ArmorPen,
		MagicPen:  s.MagicPen,
		Lethal:    s.Lethal,
		MoveSpeed: s.MoveSpeed,
	}
}

func toChampionResponse(c *domain.Champion) ChampionResponse {
	resp := ChampionResponse{
		ID:    c.ID,
		Name:  c.Name,
		Lane:  c.Lane.Label(),
		Type:  c.Type,
		Media: c.Media,
	}
	if c.Stats != nil {
		stats := toStatsResponse(c.Stats)
		resp.Stats = &stats
	}
	return resp
}

func toItemResponse(i *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Price:       i.Price,
		StatsID:     i.StatsID,
		Description: i.Description,
		Media:       i.Media,
	}
}

func (h *CatalogHandler) ListChampions(w http.ResponseWriter, r *http.Request) {
	champions, err := h.catalogService.ListChampions(r.Context())
	if err != nil {
		respondError(w, h.logger, "catalog.ListChampions", err)
		return
	}

	resp := make([]ChampionResponse, len(champions))
	for i, c := range champions {
		resp[i] = toChampionResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) GetChampion(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrChampionNotFound.Msg)
		return
	}

	champion, err := h.catalogService.GetChampion(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "catalog.GetChampion", err, zap.Uint("championID", id))
		return
	}
	writeJSON(w, http.StatusOK, toChampionResponse(champion))
}

func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalogService.ListItems(r.Context())
	if err != nil {
		respondError(w, h.logger, "catalog.ListItems", err)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrItemNotFound.Msg)
		return
	}

	item, err := h.catalogService.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "catalog.GetItem", err, zap.Uint("itemID", id))
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

func (h *CatalogHandler) ListStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalogService.ListStats(r.Context())
	if err != nil {
		respondError(w, h.logger, "catalog.ListStats", err)
		return
	}

	resp := make([]StatsResponse, len(stats))
	for i, s := range stats {
		resp[i] = toStatsResponse(s)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		writeError(w, http.StatusNotFound, domain.ErrStatsNotFound.Msg)
		return
	}

	stats, err := h.catalogService.GetStats(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, "catalog.GetStats", err, zap.Uint("statsID", id))
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}
