// Package seed loads the built-in champion, item and fan-content catalog.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dom/league-build-planner/internal/auth"
	"github.com/dom/league-build-planner/internal/domain"
	"github.com/dom/league-build-planner/internal/fandom"
	"github.com/dom/league-build-planner/internal/repository"
	"github.com/dom/league-build-planner/internal/repository/gormrepo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed catalog.json
var catalogJSON []byte

type Catalog struct {
	Champions []ChampionSeed `json:"champions"`
	Items     []ItemSeed     `json:"items"`
	Fandom    FandomSeed     `json:"fandom"`
}

type ChampionSeed struct {
	Name  string       `json:"name"`
	Lane  string       `json:"lane"`
	Type  string       `json:"type"`
	Media string       `json:"media"`
	Stats domain.Stats `json:"stats"`
}

type ItemSeed struct {
	Name        string       `json:"name"`
	Price       int          `json:"price"`
	Description string       `json:"description"`
	Media       string       `json:"media"`
	Stats       domain.Stats `json:"stats"`
}

type FandomSeed struct {
	Users      []FanUserSeed   `json:"users"`
	Characters []CharacterSeed `json:"characters"`
	Planets    []PlanetSeed    `json:"planets"`
}

type FanUserSeed struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

type CharacterSeed struct {
	Fullname string         `json:"fullname"`
	Age      int            `json:"age"`
	Faction  fandom.Faction `json:"faction"`
	Type     fandom.Role    `json:"type"`
}

type PlanetSeed struct {
	Name      string  `json:"name"`
	Size      float64 `json:"size"`
	Inhabited bool    `json:"inhabited"`
	Distance  float64 `json:"distance"`
}

// Result counts the rows a seed run inserted
type Result struct {
	Champions  int
	Items      int
	FanUsers   int
	Characters int
	Planets    int
}

// DefaultCatalog decodes the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		return nil, fmt.Errorf("decode embedded catalog: %w", err)
	}
	return &catalog, nil
}

// Run inserts every catalog entry whose unique name is not already present.
// All inserts share one transaction.
func Run(ctx context.Context, db *gorm.DB, catalog *Catalog, logger *zap.Logger) (*Result, error) {
	result := &Result{}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := gormrepo.NewRepositories(tx)
		fan := fandom.NewRepository(tx)

		if err := seedChampions(ctx, repos, catalog.Champions, result); err != nil {
			return err
		}
		if err := seedItems(ctx, repos, catalog.Items, result); err != nil {
			return err
		}
		return seedFandom(ctx, fan, catalog.Fandom, result)
	})
	if err != nil {
		return nil, err
	}

	logger.Info("seed complete",
		zap.Int("champions", result.Champions),
		zap.Int("items", result.Items),
		zap.Int("fanUsers", result.FanUsers),
		zap.Int("characters", result.Characters),
		zap.Int("planets", result.Planets),
	)
	return result, nil
}

func seedChampions(ctx context.Context, repos *repository.Repositories, champions []ChampionSeed, result *Result) error {
	for _, c := range champions {
		_, err := repos.Champion.GetByName(ctx, c.Name)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("look up champion %s: %w", c.Name, err)
		}
		if exists {
			continue
		}

		lane, err := domain.ParseLane(c.Lane)
		if err != nil {
			return fmt.Errorf("champion %s: %w", c.Name, err)
		}

		stats := c.Stats
		champion := &domain.Champion{
			Name:  c.Name,
			Lane:  lane,
			Type:  c.Type,
			Media: c.Media,
			Stats: &stats,
		}
		if err := repos.Champion.Create(ctx, champion); err != nil {
			return fmt.Errorf("create champion %s: %w", c.Name, err)
		}
		result.Champions++
	}
	return nil
}

func seedItems(ctx context.Context, repos *repository.Repositories, items []ItemSeed, result *Result) error {
	for _, i := range items {
		_, err := repos.Item.GetByName(ctx, i.Name)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("look up item %s: %w", i.Name, err)
		}
		if exists {
			continue
		}

		stats := i.Stats
		item := &domain.Item{
			Name:        i.Name,
			Price:       i.Price,
			Description: i.Description,
			Media:       i.Media,
			Stats:       &stats,
		}
		if err := repos.Item.Create(ctx, item); err != nil {
			return fmt.Errorf("create item %s: %w", i.Name, err)
		}
		result.Items++
	}
	return nil
}

func seedFandom(ctx context.Context, repo fandom.Repository, seed FandomSeed, result *Result) error {
	for _, u := range seed.Users {
		_, err := repo.GetUserByUsername(ctx, u.Username)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("look up fan user %s: %w", u.Username, err)
		}
		if exists {
			continue
		}

		hashed, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		user := &fandom.User{
			Username:     u.Username,
			PasswordHash: hashed,
			Firstname:    u.Firstname,
			Lastname:     u.Lastname,
			Email:        u.Email,
		}
		if err := repo.CreateUser(ctx, user); err != nil {
			return fmt.Errorf("create fan user %s: %w", u.Username, err)
		}
		result.FanUsers++
	}

	for _, c := range seed.Characters {
		if !c.Faction.IsValid() || !c.Type.IsValid() {
			return fmt.Errorf("character %s: invalid faction %q or type %q", c.Fullname, c.Faction, c.Type)
		}
		_, err := repo.GetCharacterByName(ctx, c.Fullname)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("look up character %s: %w", c.Fullname, err)
		}
		if exists {
			continue
		}

		character := &fandom.Character{
			Fullname: c.Fullname,
			Age:      c.Age,
			Faction:  c.Faction,
			Type:     c.Type,
		}
		if err := repo.CreateCharacter(ctx, character); err != nil {
			return fmt.Errorf("create character %s: %w", c.Fullname, err)
		}
		result.Characters++
	}

	for _, p := range seed.Planets {
		_, err := repo.GetPlanetByName(ctx, p.Name)
		exists, err := found(err)
		if err != nil {
			return fmt.Errorf("look up planet %s: %w", p.Name, err)
		}
		if exists {
			continue
		}

		planet := &fandom.Planet{
			Name:      p.Name,
			Size:      p.Size,
			Inhabited: p.Inhabited,
			Distance:  p.Distance,
		}
		if err := repo.CreatePlanet(ctx, planet); err != nil {
			return fmt.Errorf("create planet %s: %w", p.Name, err)
		}
		result.Planets++
	}
	return nil
}

// found interprets the error of a by-name lookup
func found(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}
