package domain

type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:64;uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password;not null"`
	Nick         string `json:"nick" gorm:"size:64;uniqueIndex;not null"`
	Gender       Gender `json:"gender" gorm:"type:varchar(10);not null;default:'NA'"`
	Rank         Rank   `json:"rank" gorm:"type:varchar(16);not null;default:'NA'"`
	MainRole     Lane   `json:"mainrole" gorm:"column:mainrole;type:varchar(10);not null;default:'NA'"`
}
