package model

import (
	"time"
)

// TitleMaxLength bounds Task.Title.
const TitleMaxLength = 255

type Task struct {
	ID uint `gorm:"primaryKey"`
	Identity
	Title       string  `gorm:"size:255;not null"`
	Description string  `gorm:"type:text"`
	CreatorID   uint    `gorm:"not null;index"`
	AssigneeID  *uint   `gorm:"index"`
	IsCompleted bool    `gorm:"not null;index"`
	CompletedAt *time.Time

	Creator  User  `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE"`
	Assignee *User `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
}

// IsCreator reports whether u created the task.
func (t *Task) IsCreator(u *User) bool {
	return u != nil && t.CreatorID == u.ID
}

// IsAssignee reports whether u is the current assignee.
func (t *Task) IsAssignee(u *User) bool {
	return u != nil && t.AssigneeID != nil && *t.AssigneeID == u.ID
}

// Assign replaces the assignee; nil clears it.
func (t *Task) Assign(u *User) {
	if u == nil {
		t.AssigneeID = nil
		t.Assignee = nil
		return
	}
	id := u.ID
	t.AssigneeID = &id
	t.Assignee = u
}

// SetCompleted applies a completion flag change. The timestamp is only
// touched when the flag actually flips. It returns true on a flip.
func (t *Task) SetCompleted(completed bool, now time.Time) bool {
	if t.IsCompleted == completed {
		return false
	}
	t.IsCompleted = completed
	if completed {
		ts := now
		t.CompletedAt = &ts
	} else {
		t.CompletedAt = nil
	}
	return true
}
