package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:150;not null"`
	Email        string `gorm:"size:254;index"`
	FullName     string `gorm:"size:150"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null;index"`
	IsActive     bool   `gorm:"not null;default:true"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
