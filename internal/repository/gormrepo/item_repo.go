package gormrepo

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *itemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetAll(ctx context.Context) ([]*domain.Item, error) {
	var items []*domain.Item
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	var item domain.Item
	err := r.db.WithContext(ctx).First(&item, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
