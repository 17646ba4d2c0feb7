package service

import (
	"errors"
	"time"

	"github.com/dom/league-build-planner/internal/auth"
	"github.com/dom/league-build-planner/internal/config"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/fandom"
	"github.com/dom/league-build-planner/internal/repository"
	"gorm.io/gorm"
)

type Services struct {
	Auth      *AuthService
	User      *UserService
	Catalog   *CatalogService
	Build     *BuildService
	Favourite *FavouriteService
	Fandom    *fandom.Service
}

func NewServices(repos *repository.Repositories, fandomRepo fandom.Repository, cfg *config.Config) *Services {
	tokens := auth.NewTokens(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	return &Services{
		Auth:      NewAuthService(repos.User, tokens),
		User:      NewUserService(repos.User),
		Catalog:   NewCatalogService(repos.Champion, repos.Item, repos.Stats),
		Build:     NewBuildService(repos),
		Favourite: NewFavouriteService(repos.User, repos.Build, repos.Favourite),
		Fandom:    fandom.NewService(fandomRepo),
	}
}

// lookupErr turns a failed single-row lookup into notFound when the row is
// missing, and into an internal error otherwise.
func lookupErr(err error, notFound *domain.Error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return domain.Internal(op, err)
}

// passThrough keeps domain errors raised inside a transaction intact and
// wraps anything else.
func passThrough(err error, op string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.Internal(op, err)
}
