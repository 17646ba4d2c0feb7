package repository

import (
	"context"

	"github.com/dom/league-build-planner/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetAll(ctx context.Context) ([]*domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ChampionRepository interface {
	Create(ctx context.Context, champion *domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id uint) (*domain.Champion, error)
	GetByName(ctx context.Context, name string) (*domain.Champion, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetAll(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id uint) (*domain.Item, error)
	GetByName(ctx context.Context, name string) (*domain.Item, error)
}

type StatsRepository interface {
	GetAll(ctx context.Context) ([]*domain.Stats, error)
	GetByID(ctx context.Context, id uint) (*domain.Stats, error)
}

type BuildRepository interface {
	Create(ctx context.Context, build *domain.Build) error
	GetAll(ctx context.Context) ([]*domain.Build, error)
	GetByID(ctx context.Context, id uint) (*domain.Build, error)
	Delete(ctx context.Context, id uint) error
}

type BuildItemRepository interface {
	Create(ctx context.Context, entry *domain.BuildItem) error
	// GetByBuildID returns the build's items with Item preloaded, ordered by position.
	GetByBuildID(ctx context.Context, buildID uint) ([]*domain.BuildItem, error)
	GetByBuildIDs(ctx context.Context, buildIDs []uint) (map[uint][]*domain.BuildItem, error)
	GetByOwnerID(ctx context.Context, userID uint) ([]*domain.BuildItem, error)
	// GetFirst returns the lowest-positioned entry of item in build.
	GetFirst(ctx context.Context, buildID, itemID uint) (*domain.BuildItem, error)
	CountByBuildID(ctx context.Context, buildID uint) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type FavouriteRepository interface {
	Create(ctx context.Context, favourite *domain.Favourite) error
	Get(ctx context.Context, userID, buildID uint) (*domain.Favourite, error)
	GetByUserID(ctx context.Context, userID uint) ([]*domain.Favourite, error)
	Delete(ctx context.Context, userID, buildID uint) error
}

// Transactor runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	User      UserRepository
	Champion  ChampionRepository
	Item      ItemRepository
	Stats     StatsRepository
	Build     BuildRepository
	BuildItem BuildItemRepository
	Favourite FavouriteRepository
	Tx        Transactor
}
