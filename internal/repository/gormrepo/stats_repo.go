package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetAll(ctx context.Context) ([]*domain.Stats, error) {
	var stats []*domain.Stats
	err := r.db.WithContext(ctx).Order("id ASC").Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) GetByID(ctx context.Context, id uint) (*domain.Stats, error) {
	var stats domain.Stats
	err := r.db.WithContext(ctx).First(&stats, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
