// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

// DefaultListLimit applies when a listing does not set a limit.
const DefaultListLimit = 100

// Pagination is an offset window. Page is the number of rows to skip.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize fills defaults and clamps negative values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultListLimit
	}

	return p
}

// Page is one window of a listing. NextPage is the offset of the following window.
type Page[T any] struct {
	Entities []T
	NextPage int
}

// NewPage builds a page whose NextPage advances by the number of returned entities.
func NewPage[T any](entities []T, pagination Pagination) *Page[T] {
	return &Page[T]{
		Entities: entities,
		NextPage: pagination.Page + len(entities),
	}
}
