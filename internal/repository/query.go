package repository

import (
	"strings"

	"gorm.io/gorm"
)

// Page is an offset window over an ordered result set.
type Page struct {
	Offset int
	Limit  int
}

// Order is a single ordering term.
type Order struct {
	Field string
	Desc  bool
}

// TaskQuery narrows a task listing. Nil pointers mean "no filter".
type TaskQuery struct {
	CreatorID   *uint
	AssigneeID  *uint
	IsCompleted *bool
	Search      string
	Ordering    []Order
	Page        Page
}

// UserQuery narrows a user listing.
type UserQuery struct {
	Search string
	Page   Page
}

// TaskOrderColumns maps accepted ordering names to columns.
var TaskOrderColumns = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"title":        "title",
	"is_completed": "is_completed",
}

// DefaultTaskOrdering is newest first.
var DefaultTaskOrdering = []Order{{Field: "created_at", Desc: true}}

func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(s)) + "%"
}

func paginate(db *gorm.DB, page Page) *gorm.DB {
	if page.Offset > 0 {
		db = db.Offset(page.Offset)
	}
	if page.Limit > 0 {
		db = db.Limit(page.Limit)
	}
	return db
}
