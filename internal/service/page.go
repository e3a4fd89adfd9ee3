package service

import (
	"tasktracker/internal/repository"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a 1-based page number and a page size. Zero values fall
// back to the first page and the default size.
type PageRequest struct {
	Number int
	Size   int
}

func (p PageRequest) normalize() PageRequest {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) window() repository.Page {
	return repository.Page{Offset: (p.Number - 1) * p.Size, Limit: p.Size}
}

type Page[T any] struct {
	Items  []T
	Count  int64
	Number int
	Size   int
}

func (p Page[T]) HasNext() bool {
	return int64(p.Number*p.Size) < p.Count
}

func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// newPage rejects pages past the end. The first page always exists, even
// when empty.
func newPage[T any](items []T, count int64, req PageRequest) (Page[T], error) {
	if req.Number > 1 && int64((req.Number-1)*req.Size) >= count {
		return Page[T]{}, &Error{Kind: KindNotFound, Message: "Invalid page."}
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Count: count, Number: req.Number, Size: req.Size}, nil
}
