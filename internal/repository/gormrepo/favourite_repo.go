package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type favouriteRepository struct {
	db *gorm.DB
}

func NewFavouriteRepository(db *gorm.DB) *favouriteRepository {
	return &favouriteRepository{db: db}
}

func (r *favouriteRepository) Create(ctx context.Context, favourite *domain.Favourite) error {
	return r.db.WithContext(ctx).Omit("User", "Build").Create(favourite).Error
}

func (r *favouriteRepository) Get(ctx context.Context, userID, buildID uint) (*domain.Favourite, error) {
	var favourite domain.Favourite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND build_id = ?", userID, buildID).
		First(&favourite).Error
	if err != nil {
		return nil, err
	}
	return &favourite, nil
}

func (r *favouriteRepository) GetByUserID(ctx context.Context, userID uint) ([]*domain.Favourite, error) {
	var favourites []*domain.Favourite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("build_id ASC").
		Find(&favourites).Error
	if err != nil {
		return nil, err
	}
	return favourites, nil
}

func (r *favouriteRepository) Delete(ctx context.Context, userID, buildID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND build_id = ?", userID, buildID).
		Delete(&domain.Favourite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
