package model

type Comment struct {
	ID uint `gorm:"primaryKey"`
	Identity
	TaskID   uint   `gorm:"not null;index"`
	AuthorID uint   `gorm:"not null;index"`
	Text     string `gorm:"type:text;not null"`

	Task   *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Author User  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
