package fandom

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	ListUsers(ctx context.Context) ([]*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	CreateCharacter(ctx context.Context, character *Character) error
	ListCharacters(ctx context.Context) ([]*Character, error)
	GetCharacter(ctx context.Context, id uint) (*Character, error)
	GetCharacterByName(ctx context.Context, fullname string) (*Character, error)

	CreatePlanet(ctx context.Context, planet *Planet) error
	ListPlanets(ctx context.Context) ([]*Planet, error)
	GetPlanet(ctx context.Context, id uint) (*Planet, error)
	GetPlanetByName(ctx context.Context, name string) (*Planet, error)

	CreateFavorite(ctx context.Context, favorite *Favorite) error
	ListFavorites(ctx context.Context, userID uint) ([]*Favorite, error)
	GetPlanetFavorite(ctx context.Context, userID, planetID uint) (*Favorite, error)
	GetCharacterFavorite(ctx context.Context, userID, characterID uint) (*Favorite, error)
	DeleteFavorite(ctx context.Context, id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *gormRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateUser(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormRepository) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *gormRepository) GetUser(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) CreateCharacter(ctx context.Context, character *Character) error {
	return r.db.WithContext(ctx).Create(character).Error
}

func (r *gormRepository) ListCharacters(ctx context.Context) ([]*Character, error) {
	var characters []*Character
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&characters).Error; err != nil {
		return nil, err
	}
	return characters, nil
}

func (r *gormRepository) GetCharacter(ctx context.Context, id uint) (*Character, error) {
	var character Character
	if err := r.db.WithContext(ctx).First(&character, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *gormRepository) GetCharacterByName(ctx context.Context, fullname string) (*Character, error) {
	var character Character
	if err := r.db.WithContext(ctx).First(&character, "fullname = ?", fullname).Error; err != nil {
		return nil, err
	}
	return &character, nil
}

func (r *gormRepository) CreatePlanet(ctx context.Context, planet *Planet) error {
	return r.db.WithContext(ctx).Create(planet).Error
}

func (r *gormRepository) ListPlanets(ctx context.Context) ([]*Planet, error) {
	var planets []*Planet
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&planets).Error; err != nil {
		return nil, err
	}
	return planets, nil
}

func (r *gormRepository) GetPlanet(ctx context.Context, id uint) (*Planet, error) {
	var planet Planet
	if err := r.db.WithContext(ctx).First(&planet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *gormRepository) GetPlanetByName(ctx context.Context, name string) (*Planet, error) {
	var planet Planet
	if err := r.db.WithContext(ctx).First(&planet, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &planet, nil
}

func (r *gormRepository) CreateFavorite(ctx context.Context, favorite *Favorite) error {
	return r.db.WithContext(ctx).Omit("User", "Planet", "Character").Create(favorite).Error
}

func (r *gormRepository) ListFavorites(ctx context.Context, userID uint) ([]*Favorite, error) {
	var favorites []*Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *gormRepository) GetPlanetFavorite(ctx context.Context, userID, planetID uint) (*Favorite, error) {
	var favorite Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND planet_id = ?", userID, planetID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *gormRepository) GetCharacterFavorite(ctx context.Context, userID, characterID uint) (*Favorite, error) {
	var favorite Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND character_id = ?", userID, characterID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *gormRepository) DeleteFavorite(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Favorite{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
