package service

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
)

// CatalogService serves the read-only champion, item and stats catalog
type CatalogService struct {
	championRepo repository.ChampionRepository
	itemRepo     repository.ItemRepository
	statsRepo    repository.StatsRepository
}

func NewCatalogService(championRepo repository.ChampionRepository, itemRepo repository.ItemRepository, statsRepo repository.StatsRepository) *CatalogService {
	return &CatalogService{
		championRepo: championRepo,
		itemRepo:     itemRepo,
		statsRepo:    statsRepo,
	}
}

func (s *CatalogService) ListChampions(ctx context.Context) ([]*domain.Champion, error) {
	champions, err := s.championRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list champions", err)
	}
	return champions, nil
}

func (s *CatalogService) GetChampion(ctx context.Context, id uint) (*domain.Champion, error) {
	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrChampionNotFound, "Couldn't load champion")
	}
	return champion, nil
}

func (s *CatalogService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	items, err := s.itemRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list items", err)
	}
	return items, nil
}

func (s *CatalogService) GetItem(ctx context.Context, id uint) (*domain.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrItemNotFound, "Couldn't load item")
	}
	return item, nil
}

func (s *CatalogService) ListStats(ctx context.Context) ([]*domain.Stats, error) {
	stats, err := s.statsRepo.GetAll(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list stats", err)
	}
	return stats, nil
}

func (s *CatalogService) GetStats(ctx context.Context, id uint) (*domain.Stats, error) {
	stats, err := s.statsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrStatsNotFound, "Couldn't load stats")
	}
	return stats, nil
}
