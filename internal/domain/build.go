package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Build struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Title        string         `json:"title" gorm:"size:120;uniqueIndex;not null"`
	Description  string         `json:"description" gorm:"not null"`
	ChampionID   uint           `json:"champion_id" gorm:"not null;index"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	CreationDate datatypes.Date `json:"creation_date" gorm:"not null"`

	// Relations
	Champion *Champion `json:"-" gorm:"foreignKey:ChampionID"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// NewBuild stamps the build with today's UTC date
func NewBuild(userID, championID uint, title, description string) *Build {
	return &Build{
		Title:        title,
		Description:  description,
		ChampionID:   championID,
		UserID:       userID,
		CreationDate: datatypes.Date(time.Now().UTC()),
	}
}

// BuildItem places an item in a build. The same item may appear several
// times in one build, each at its own position.
type BuildItem struct {
	ID           uint `json:"-" gorm:"primaryKey"`
	BuildID      uint `json:"build_id" gorm:"not null;index"`
	ItemID       uint `json:"item_id" gorm:"not null;index"`
	ItemPosition int  `json:"item_position" gorm:"not null"`

	Build *Build `json:"-" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
	Item  *Item  `json:"item,omitempty" gorm:"foreignKey:ItemID"`
}

// TableName returns the table name for GORM
func (BuildItem) TableName() string {
	return "builditems"
}

// Favourite is a user's bookmark of a build
type Favourite struct {
	UserID  uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	BuildID uint `json:"build_id" gorm:"primaryKey;autoIncrement:false"`

	User  *User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Build *Build `json:"-" gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Favourite) TableName() string {
	return "favourites"
}
