package fandom

import (
	"context"
	"errors"

	"github.com/dom/league-build-planner/internal/domain"
	"gorm.io/gorm"
)

var (
	ErrMissingUserID = &domain.Error{Kind: domain.KindValidation, Msg: "user_id is required"}
	ErrUserNotFound  = &domain.Error{Kind: domain.KindNotFound, Msg: "User not found"}
	ErrNoFavorites   = &domain.Error{Kind: domain.KindNotFound, Msg: "There are no favorites for this user"}

	ErrCharacterNotFound       = &domain.Error{Kind: domain.KindNotFound, Msg: "Character not found"}
	ErrCharacterFavoriteExists = &domain.Error{Kind: domain.KindConflict, Msg: "Character already in favorites"}
	ErrCharacterNotInFavorites = &domain.Error{Kind: domain.KindNotFound, Msg: "Character not found in favorites"}

	ErrPlanetNotFound       = &domain.Error{Kind: domain.KindNotFound, Msg: "Planet not found"}
	ErrPlanetFavoriteExists = &domain.Error{Kind: domain.KindConflict, Msg: "Planet already in favorites"}
	ErrPlanetNotInFavorites = &domain.Error{Kind: domain.KindNotFound, Msg: "Planet not found in favorites"}
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListCharacters(ctx context.Context) ([]*Character, error) {
	characters, err := s.repo.ListCharacters(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list characters", err)
	}
	return characters, nil
}

func (s *Service) GetCharacter(ctx context.Context, id uint) (*Character, error) {
	character, err := s.repo.GetCharacter(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrCharacterNotFound, "Couldn't load character")
	}
	return character, nil
}

func (s *Service) ListPlanets(ctx context.Context) ([]*Planet, error) {
	planets, err := s.repo.ListPlanets(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list planets", err)
	}
	return planets, nil
}

func (s *Service) GetPlanet(ctx context.Context, id uint) (*Planet, error) {
	planet, err := s.repo.GetPlanet(ctx, id)
	if err != nil {
		return nil, lookupErr(err, ErrPlanetNotFound, "Couldn't load planet")
	}
	return planet, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, domain.Internal("Couldn't list users", err)
	}
	return users, nil
}

// ListFavorites returns a user's favourites. An empty list is reported as
// ErrNoFavorites.
func (s *Service) ListFavorites(ctx context.Context, userID uint) ([]*Favorite, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	favorites, err := s.repo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, domain.Internal("Couldn't list favorites", err)
	}
	if len(favorites) == 0 {
		return nil, ErrNoFavorites
	}
	return favorites, nil
}

func (s *Service) AddPlanetFavorite(ctx context.Context, userID, planetID uint) (*Favorite, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	if _, err := s.repo.GetPlanet(ctx, planetID); err != nil {
		return nil, lookupErr(err, ErrPlanetNotFound, "Couldn't add favorite")
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	_, err := s.repo.GetPlanetFavorite(ctx, userID, planetID)
	if err := existsErr(err, ErrPlanetFavoriteExists); err != nil {
		return nil, err
	}

	favorite := &Favorite{UserID: userID, PlanetID: &planetID}
	if err := s.create(ctx, favorite, ErrPlanetFavoriteExists); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *Service) AddCharacterFavorite(ctx context.Context, userID, characterID uint) (*Favorite, error) {
	if userID == 0 {
		return nil, ErrMissingUserID
	}
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return nil, lookupErr(err, ErrCharacterNotFound, "Couldn't add favorite")
	}
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	_, err := s.repo.GetCharacterFavorite(ctx, userID, characterID)
	if err := existsErr(err, ErrCharacterFavoriteExists); err != nil {
		return nil, err
	}

	favorite := &Favorite{UserID: userID, CharacterID: &characterID}
	if err := s.create(ctx, favorite, ErrCharacterFavoriteExists); err != nil {
		return nil, err
	}
	return favorite, nil
}

func (s *Service) RemovePlanetFavorite(ctx context.Context, userID, planetID uint) error {
	if userID == 0 {
		return ErrMissingUserID
	}
	favorite, err := s.repo.GetPlanetFavorite(ctx, userID, planetID)
	if err != nil {
		return lookupErr(err, ErrPlanetNotInFavorites, "Couldn't remove favorite")
	}
	if err := s.repo.DeleteFavorite(ctx, favorite.ID); err != nil {
		return lookupErr(err, ErrPlanetNotInFavorites, "Couldn't remove favorite")
	}
	return nil
}

func (s *Service) RemoveCharacterFavorite(ctx context.Context, userID, characterID uint) error {
	if userID == 0 {
		return ErrMissingUserID
	}
	favorite, err := s.repo.GetCharacterFavorite(ctx, userID, characterID)
	if err != nil {
		return lookupErr(err, ErrCharacterNotInFavorites, "Couldn't remove favorite")
	}
	if err := s.repo.DeleteFavorite(ctx, favorite.ID); err != nil {
		return lookupErr(err, ErrCharacterNotInFavorites, "Couldn't remove favorite")
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID uint) error {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return lookupErr(err, ErrUserNotFound, "Couldn't add favorite")
	}
	return nil
}

func (s *Service) create(ctx context.Context, favorite *Favorite, duplicate *domain.Error) error {
	if err := s.repo.CreateFavorite(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicate
		}
		return domain.Internal("Couldn't add favorite", err)
	}
	return nil
}

func lookupErr(err error, notFound *domain.Error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return domain.Internal(op, err)
}

// existsErr interprets the result of a favourite lookup made before insert
func existsErr(err error, duplicate *domain.Error) error {
	switch {
	case err == nil:
		return duplicate
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil
	default:
		return domain.Internal("Couldn't add favorite", err)
	}
}
