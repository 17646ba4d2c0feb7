package service

import (
	"context"
	"errors"

	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/repository"
	"gorm.io/gorm"
)

type FavouriteService struct {
	userRepo      repository.UserRepository
	buildRepo     repository.BuildRepository
	favouriteRepo repository.FavouriteRepository
}

func NewFavouriteService(userRepo repository.UserRepository, buildRepo repository.BuildRepository, favouriteRepo repository.FavouriteRepository) *FavouriteService {
	return &FavouriteService{
		userRepo:      userRepo,
		buildRepo:     buildRepo,
		favouriteRepo: favouriteRepo,
	}
}

func (s *FavouriteService) List(ctx context.Context, userID uint) ([]*domain.Favourite, error) {
	favourites, err := s.favouriteRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, domain.Internal("Couldn't list favourites", err)
	}
	return favourites, nil
}

func (s *FavouriteService) Add(ctx context.Context, userID, buildID uint) (*domain.Favourite, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, lookupErr(err, domain.ErrUserNotFound, "Could not add favourite")
	}
	if _, err := s.buildRepo.GetByID(ctx, buildID); err != nil {
		return nil, lookupErr(err, domain.ErrBuildNotFound, "Could not add favourite")
	}

	_, err := s.favouriteRepo.Get(ctx, userID, buildID)
	if err == nil {
		return nil, domain.ErrFavouriteExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.Internal("Could not add favourite", err)
	}

	favourite := &domain.Favourite{UserID: userID, BuildID: buildID}
	if err := s.favouriteRepo.Create(ctx, favourite); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, domain.ErrFavouriteExists
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, domain.ErrBuildNotFound
		}
		return nil, domain.Internal("Could not add favourite", err)
	}
	return favourite, nil
}

func (s *FavouriteService) Remove(ctx context.Context, userID, buildID uint) error {
	if err := s.favouriteRepo.Delete(ctx, userID, buildID); err != nil {
		return lookupErr(err, domain.ErrFavouriteNotFound, "Could not discard favourite")
	}
	return nil
}
