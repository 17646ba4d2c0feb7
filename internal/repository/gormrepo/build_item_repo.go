package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type buildItemRepository struct {
	db *gorm.DB
}

func NewBuildItemRepository(db *gorm.DB) *buildItemRepository {
	return &buildItemRepository{db: db}
}

func (r *buildItemRepository) Create(ctx context.Context, entry *domain.BuildItem) error {
	return r.db.WithContext(ctx).Omit("Build", "Item").Create(entry).Error
}

func (r *buildItemRepository) GetByBuildID(ctx context.Context, buildID uint) ([]*domain.BuildItem, error) {
	var entries []*domain.BuildItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("build_id = ?", buildID).
		Order("item_position ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetByBuildIDs groups the entries of several builds by build id, each group
// ordered by position.
func (r *buildItemRepository) GetByBuildIDs(ctx context.Context, buildIDs []uint) (map[uint][]*domain.BuildItem, error) {
	grouped := make(map[uint][]*domain.BuildItem, len(buildIDs))
	if len(buildIDs) == 0 {
		return grouped, nil
	}

	var entries []*domain.BuildItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("build_id IN ?", buildIDs).
		Order("build_id ASC, item_position ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		grouped[e.BuildID] = append(grouped[e.BuildID], e)
	}
	return grouped, nil
}

// GetByOwnerID returns the entries of every build authored by userID
func (r *buildItemRepository) GetByOwnerID(ctx context.Context, userID uint) ([]*domain.BuildItem, error) {
	var entries []*domain.BuildItem
	err := r.db.WithContext(ctx).
		Joins("JOIN builds ON builds.id = builditems.build_id").
		Where("builds.user_id = ?", userID).
		Order("builditems.build_id ASC, builditems.item_position ASC, builditems.id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *buildItemRepository) GetFirst(ctx context.Context, buildID, itemID uint) (*domain.BuildItem, error) {
	var entry domain.BuildItem
	err := r.db.WithContext(ctx).
		Where("build_id = ? AND item_id = ?", buildID, itemID).
		Order("item_position ASC, id ASC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *buildItemRepository) CountByBuildID(ctx context.Context, buildID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BuildItem{}).
		Where("build_id = ?", buildID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *buildItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.BuildItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
