package domain

// Stats is a flat bundle of champion or item attributes. A champion owns
// exactly one Stats row; items point at theirs.
type Stats struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	AD        int     `json:"ad" gorm:"column:ad;not null"`
	AP        int     `json:"ap" gorm:"column:ap;not null"`
	HP        int     `json:"hp" gorm:"column:hp;not null"`
	HPRegen   int     `json:"hpreg" gorm:"column:hpreg;not null"`
	Mana      int     `json:"mana" gorm:"not null"`
	ManaRegen int     `json:"manareg" gorm:"column:manareg;not null"`
	AtkSpeed  float64 `json:"atspeed" gorm:"column:atspeed;not null"`
	Lifesteal int     `json:"lifesteal" gorm:"not null"`
	SpellVamp int     `json:"spellvamp" gorm:"column:spellvamp;not null"`
	Crit      int     `json:"crit" gorm:"not null"`
	CD        int     `json:"cd" gorm:"column:cd;not null"`
	Armor     int     `json:"armor" gorm:"not null"`
	MResist   int     `json:"mresist" gorm:"column:mresist;not null"`
	ArmorPen  int     `json:"armorpen" gorm:"column:armorpen;not null"`
	MagicPen  int     `json:"magicpen" gorm:"column:magicpen;not null"`
	Lethal    int     `json:"lethal" gorm:"not null"`
	MoveSpeed int     `json:"mvspeed" gorm:"column:mvspeed;not null"`
}

type Champion struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:64;uniqueIndex;not null"`
	Lane    Lane   `json:"lane" gorm:"type:varchar(10);not null;default:'NA'"`
	Type    string `json:"type" gorm:"not null"` // e.g. "Fighter"
	Media   string `json:"media" gorm:"not null"`
	StatsID uint   `json:"-" gorm:"not null;uniqueIndex"`

	Stats *Stats `json:"stats,omitempty" gorm:"foreignKey:StatsID"`
}

type Item struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:64;uniqueIndex;not null"`
	Price       int    `json:"price" gorm:"not null"`
	StatsID     uint   `json:"stats_id" gorm:"not null;index"`
	Description string `json:"description" gorm:"not null"`
	Media       string `json:"media" gorm:"not null"`

	Stats *Stats `json:"-" gorm:"foreignKey:StatsID"`
}

// TableName returns the table name for GORM
func (Stats) TableName() string {
	return "stats"
}
