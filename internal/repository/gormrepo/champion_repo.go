package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type championRepository struct {
	db *gorm.DB
}

func NewChampionRepository(db *gorm.DB) *championRepository {
	return &championRepository{db: db}
}

// Create inserts the champion. A non-nil Stats without an ID is inserted
// first and linked through StatsID.
func (r *championRepository) Create(ctx context.Context, champion *domain.Champion) error {
	return r.db.WithContext(ctx).Create(champion).Error
}

func (r *championRepository) GetAll(ctx context.Context) ([]*domain.Champion, error) {
	var champions []*domain.Champion
	err := r.db.WithContext(ctx).Preload("Stats").Order("name ASC").Find(&champions).Error
	if err != nil {
		return nil, err
	}
	return champions, nil
}

func (r *championRepository) GetByID(ctx context.Context, id uint) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).Preload("Stats").First(&champion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}

func (r *championRepository) GetByName(ctx context.Context, name string) (*domain.Champion, error) {
	var champion domain.Champion
	err := r.db.WithContext(ctx).Preload("Stats").First(&champion, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &champion, nil
}
