package model

type User struct {
	ID uint `gorm:"primaryKey"`
	Identity
	Username       string `gorm:"size:150;uniqueIndex;not null"`
	Email          string `gorm:"size:254"`
	FirstName      string `gorm:"size:150"`
	LastName       string `gorm:"size:150"`
	HashedPassword string `gorm:"not null"`
	IsActive       bool   `gorm:"not null"`
	IsStaff        bool   `gorm:"not null"`
	IsSuperuser    bool   `gorm:"not null"`
}
