// Package fandom holds the fan-content context: fan users, characters,
// planets and their favourites. It shares the database handle with the build
// planner but none of its tables.
package fandom

import (
	"fmt"

	"gorm.io/gorm"
)

// Faction is the allegiance of a character
type Faction string

const (
	FactionRepublic    Faction = "republic"
	FactionSeparatists Faction = "separatists"
	FactionEmpire      Faction = "empire"
	FactionRebels      Faction = "rebels"
	FactionFirstOrder  Faction = "f_order"
	FactionResistance  Faction = "resistance"
)

var factionLabels = map[Faction]string{
	FactionRepublic:    "Galactic Republic",
	FactionSeparatists: "Separatists (CIS)",
	FactionEmpire:      "Galactic Empire",
	FactionRebels:      "Rebel Alliance",
	FactionFirstOrder:  "First Order",
	FactionResistance:  "Resistance",
}

func (f Faction) IsValid() bool {
	_, ok := factionLabels[f]
	return ok
}

func (f Faction) Label() string {
	return factionLabels[f]
}

// Role is the narrative role a character plays
type Role string

const (
	RoleVillain  Role = "villain"
	RoleAntihero Role = "antihero"
	RoleHero     Role = "hero"
	RoleNeutral  Role = "neutral"
)

var roleLabels = map[Role]string{
	RoleVillain:  "Villain",
	RoleAntihero: "Anti-hero",
	RoleHero:     "Hero",
	RoleNeutral:  "Neutral",
}

func (r Role) IsValid() bool {
	_, ok := roleLabels[r]
	return ok
}

func (r Role) Label() string {
	return roleLabels[r]
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	Firstname    string
	Lastname     string
	Email        string `gorm:"size:255;uniqueIndex;not null"`
}

func (User) TableName() string {
	return "fandom_users"
}

type Character struct {
	ID       uint    `gorm:"primaryKey"`
	Fullname string  `gorm:"size:128;uniqueIndex;not null"`
	Age      int     `gorm:"not null"`
	Faction  Faction `gorm:"type:varchar(16)"`
	Type     Role    `gorm:"type:varchar(16)"`
}

func (Character) TableName() string {
	return "fandom_characters"
}

type Planet struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"size:128;uniqueIndex;not null"`
	Size      float64 `gorm:"not null"`
	Inhabited bool    `gorm:"not null"`
	Distance  float64 `gorm:"not null"`
}

func (Planet) TableName() string {
	return "fandom_planets"
}

// Favorite marks either a planet or a character as a user's favourite.
// Exactly one of PlanetID and CharacterID is set.
type Favorite struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      uint  `gorm:"not null;uniqueIndex:idx_fandom_fav_planet;uniqueIndex:idx_fandom_fav_character"`
	PlanetID    *uint `gorm:"uniqueIndex:idx_fandom_fav_planet"`
	CharacterID *uint `gorm:"uniqueIndex:idx_fandom_fav_character"`

	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Planet    *Planet    `gorm:"foreignKey:PlanetID;constraint:OnDelete:CASCADE"`
	Character *Character `gorm:"foreignKey:CharacterID;constraint:OnDelete:CASCADE"`
}

func (Favorite) TableName() string {
	return "fandom_favorites"
}

// Migrate creates or updates the fan-content tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Character{}, &Planet{}, &Favorite{}); err != nil {
		return fmt.Errorf("auto migrate fandom: %w", err)
	}
	return nil
}
