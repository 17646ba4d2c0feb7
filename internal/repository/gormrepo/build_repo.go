package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type buildRepository struct {
	db *gorm.DB
}

func NewBuildRepository(db *gorm.DB) *buildRepository {
	return &buildRepository{db: db}
}

func (r *buildRepository) Create(ctx context.Context, build *domain.Build) error {
	return r.db.WithContext(ctx).Omit("User", "Champion").Create(build).Error
}

func (r *buildRepository) GetAll(ctx context.Context) ([]*domain.Build, error) {
	var builds []*domain.Build
	err := r.db.WithContext(ctx).Preload("User").Order("id ASC").Find(&builds).Error
	if err != nil {
		return nil, err
	}
	return builds, nil
}

func (r *buildRepository) GetByID(ctx context.Context, id uint) (*domain.Build, error) {
	var build domain.Build
	err := r.db.WithContext(ctx).Preload("User").First(&build, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &build, nil
}

// Delete removes the build. Its build items and favourites go with it
// through ON DELETE CASCADE.
func (r *buildRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Build{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
