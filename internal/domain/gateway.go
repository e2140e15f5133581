package domain

import "context"

// Ref is the write-side shape of a foreign key: related entities are
// submitted as {"id": n} objects and arrive embedded on reads.
type Ref struct {
	ID int64 `json:"id"`
}

// FilterKind selects a server-side search mode for a list screen.
// Which kinds an entity supports depends on its gateway.
type FilterKind string

const (
	FilterNone          FilterKind = ""
	FilterByName        FilterKind = "name"
	FilterByEmail       FilterKind = "email"
	FilterByDescription FilterKind = "description"
	FilterByMinPrice    FilterKind = "min-price"
	FilterByMaxPrice    FilterKind = "max-price"
)

// PageRequest describes one page of a server-side listing
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction string
}

// Page is the server's paged response envelope. TotalElements counts
// every record matching the query, not just the returned slice.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

// Lister is the read side of an entity gateway
type Lister[T any] interface {
	// List returns every record. Used only to prime in-memory
	// reference lists (dropdown options); list screens always page.
	List(ctx context.Context) ([]T, error)

	ListPage(ctx context.Context, page PageRequest) (Page[T], error)

	// Search runs a filtered paginated query. Kinds the entity does
	// not support fail with ErrCodeUnsupportedFilter without touching
	// the network.
	Search(ctx context.Context, kind FilterKind, value string, page PageRequest) (Page[T], error)
}

// Gateway is the uniform remote interface every entity type exposes.
// T is the read model with embedded relations, D the write draft with
// id references.
type Gateway[T any, D any] interface {
	Lister[T]

	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int64, draft D) (T, error)
	Delete(ctx context.Context, id int64) error
}
