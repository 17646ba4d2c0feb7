package service

import (
	"context"
	"errors"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
	"gorm.io/gorm"
)

type BuildService struct {
	repos *repository.Repositories
}

func NewBuildService(repos *repository.Repositories) *BuildService {
	return &BuildService{repos: repos}
}

// BuildDetails is a build with its author loaded and its items ordered by
// position.
type BuildDetails struct {
	Build *domain.Build
	Items []*domain.BuildItem
}

type CreateBuildInput struct {
	UserID      uint
	Title       string
	Description string
	ChampionID  uint
}

func (s *BuildService) List(ctx context.Context) ([]*BuildDetails, error) {
	builds, err := s.repos.Build.GetAll(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list builds", err)
	}

	ids := make([]uint, 0, len(builds))
	for _, b := range builds {
		ids = append(ids, b.ID)
	}

	items, err := s.repos.BuildItem.GetByBuildIDs(ctx, ids)
	if err != nil {
		return nil, domain.Internal("Couldn't list builds", err)
	}

	details := make([]*BuildDetails, 0, len(builds))
	for _, b := range builds {
		details = append(details, &BuildDetails{Build: b, Items: items[b.ID]})
	}
	return details, nil
}

func (s *BuildService) Get(ctx context.Context, id uint) (*BuildDetails, error) {
	build, err := s.repos.Build.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, domain.ErrBuildNotFound, "Couldn't load build")
	}

	items, err := s.repos.BuildItem.GetByBuildID(ctx, id)
	if err != nil {
		return nil, domain.Internal("Couldn't load build", err)
	}

	return &BuildDetails{Build: build, Items: items}, nil
}

// Create stores a new build authored by input.UserID, dated today in UTC
func (s *BuildService) Create(ctx context.Context, input CreateBuildInput) (*BuildDetails, error) {
	if input.Title == "" || input.Description == "" || input.ChampionID == 0 {
		return nil, domain.ErrMissingBuildFields
	}

	user, err := s.repos.User.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, lookupErr(err, domain.ErrUserNotFound, "Could not create build")
	}

	if _, err := s.repos.Champion.GetByID(ctx, input.ChampionID); err != nil {
		return nil, lookupErr(err, domain.ErrChampionNotFound, "Could not create build")
	}

	build := domain.NewBuild(user.ID, input.ChampionID, input.Title, input.Description)
	if err := s.repos.Build.Create(ctx, build); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, domain.ErrBuildTitleTaken
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, domain.ErrChampionNotFound
		}
		return nil, domain.Internal("Could not create build", err)
	}
	build.User = user

	return &BuildDetails{Build: build, Items: []*domain.BuildItem{}}, nil
}

// Delete removes a build owned by userID together with its items and
// favourites. It returns the deleted build.
func (s *BuildService) Delete(ctx context.Context, userID, buildID uint) (*domain.Build, error) {
	var deleted *domain.Build
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		build, err := repos.Build.GetByID(ctx, buildID)
		if err != nil {
			return lookupErr(err, domain.ErrBuildNotFound, "Could not delete build")
		}
		if build.UserID != userID {
			return domain.ErrNotBuildOwner
		}
		if err := repos.Build.Delete(ctx, buildID); err != nil {
			return lookupErr(err, domain.ErrBuildNotFound, "Could not delete build")
		}
		deleted = build
		return nil
	})
	if err != nil {
		return nil, passThrough(err, "Could not delete build")
	}
	return deleted, nil
}

// ListOwnedItems returns the item entries of every build userID authored
func (s *BuildService) ListOwnedItems(ctx context.Context, userID uint) ([]*domain.BuildItem, error) {
	entries, err := s.repos.BuildItem.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("Couldn't list build items", err)
	}
	return entries, nil
}

// AddItem appends itemID to the end of a build owned by userID. The same
// item may be added more than once.
//
// The position is the current item count plus one. Count and insert share a
// transaction but nothing locks the build, so two concurrent adds can read the
// same count and land on the same position.
func (s *BuildService) AddItem(ctx context.Context, userID, buildID, itemID uint) (*domain.BuildItem, error) {
	var entry *domain.BuildItem
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		build, err := repos.Build.GetByID(ctx, buildID)
		if err != nil {
			return lookupErr(err, domain.ErrBuildNotFound, "Could not add item to build")
		}
		if build.UserID != userID {
			return domain.ErrNotBuildEditor
		}
		if _, err := repos.Item.GetByID(ctx, itemID); err != nil {
			return lookupErr(err, domain.ErrItemNotFound, "Could not add item to build")
		}

		count, err := repos.BuildItem.CountByBuildID(ctx, buildID)
		if err != nil {
			return domain.Internal("Could not add item to build", err)
		}

		entry = &domain.BuildItem{
			BuildID:      buildID,
			ItemID:       itemID,
			ItemPosition: int(count) + 1,
		}
		if err := repos.BuildItem.Create(ctx, entry); err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return domain.ErrItemNotFound
			}
			return domain.Internal("Could not add item to build", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough(err, "Could not add item to build")
	}
	return entry, nil
}

// RemoveItem deletes one occurrence of itemID from a build owned by userID,
// the one with the lowest position. Remaining positions are left as they are.
func (s *BuildService) RemoveItem(ctx context.Context, userID, buildID, itemID uint) error {
	err := s.repos.Tx.WithinTransaction(ctx, func(repos *repository.Repositories) error {
		build, err := repos.Build.GetByID(ctx, buildID)
		if err != nil {
			return lookupErr(err, domain.ErrBuildNotFound, "Could not delete the item from the build")
		}

		entry, err := repos.BuildItem.GetFirst(ctx, buildID, itemID)
		if err != nil {
			return lookupErr(err, domain.ErrBuildItemNotFound, "Could not delete the item from the build")
		}

		if build.UserID != userID {
			return domain.ErrNotBuildOwner
		}

		if err := repos.BuildItem.Delete(ctx, entry.ID); err != nil {
			return lookupErr(err, domain.ErrBuildItemNotFound, "Could not delete the item from the build")
		}
		return nil
	})
	if err != nil {
		return passThrough(err, "Could not delete the item from the build")
	}
	return nil
}
