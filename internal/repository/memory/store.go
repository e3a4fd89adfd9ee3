// Package memory keeps users, tasks and comments in process memory. It
// mirrors the gorm repositories closely enough to stand in for them in tests
// and in a throwaway local run.
package memory

import (
	"sort"
	"strings"
	"sync"
	"time"

	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/google/uuid"
)

type Store struct {
	mtx      sync.RWMutex
	nextID   uint
	now      func() time.Time
	users    map[uint]*model.User
	tasks    map[uint]*model.Task
	comments map[uint]*model.Comment
}

func NewStore() *Store {
	return &Store{
		now:      time.Now,
		users:    make(map[uint]*model.User),
		tasks:    make(map[uint]*model.Task),
		comments: make(map[uint]*model.Comment),
	}
}

func (s *Store) Users() *Users       { return &Users{s: s} }
func (s *Store) Tasks() *Tasks       { return &Tasks{s: s} }
func (s *Store) Comments() *Comments { return &Comments{s: s} }

// stamp assigns storage-owned fields on insert. Caller holds the write lock.
func (s *Store) stamp(id *uint, ident *model.Identity) {
	s.nextID++
	*id = s.nextID
	if ident.UUID == uuid.Nil {
		ident.UUID = uuid.New()
	}
	now := s.now()
	ident.CreatedAt = now
	ident.UpdatedAt = now
}

func (s *Store) userCopy(id uint) model.User {
	if u, ok := s.users[id]; ok {
		return *u
	}
	return model.User{}
}

// hydrate returns a detached copy of t with its people attached.
func (s *Store) hydrate(t *model.Task) model.Task {
	out := *t
	out.Creator = s.userCopy(t.CreatorID)
	out.Assignee = nil
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		out.AssigneeID = &id
		if u, ok := s.users[id]; ok {
			cp := *u
			out.Assignee = &cp
		}
	}
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		out.CompletedAt = &ts
	}
	return out
}

// strip returns a copy of t holding only columns, as a table row would.
func strip(t *model.Task) *model.Task {
	row := *t
	row.Creator = model.User{}
	row.Assignee = nil
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		row.AssigneeID = &id
	}
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		row.CompletedAt = &ts
	}
	return &row
}

func window[T any](items []T, page repository.Page) []T {
	if page.Offset >= len(items) {
		return []T{}
	}
	items = items[page.Offset:]
	if page.Limit > 0 && page.Limit < len(items) {
		items = items[:page.Limit]
	}
	return items
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func sortTasks(tasks []model.Task, ordering []repository.Order) {
	if len(ordering) == 0 {
		ordering = repository.DefaultTaskOrdering
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		for _, o := range ordering {
			c := compareTaskField(a, b, o.Field)
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return a.ID > b.ID
	})
}

func compareTaskField(a, b model.Task, field string) int {
	switch field {
	case "created_at":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updated_at":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "title":
		return strings.Compare(a.Title, b.Title)
	case "is_completed":
		switch {
		case a.IsCompleted == b.IsCompleted:
			return 0
		case !a.IsCompleted:
			return -1
		default:
			return 1
		}
	}
	return 0
}
