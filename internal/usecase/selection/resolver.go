// Package selection restricts a dependent dropdown to candidates
// matching two governing foreign keys, so invalid combinations are
// unrepresentable instead of merely validated after the fact.
package selection

import (
	"sync"

	"github.com/garciapp2/gameaccounts/internal/domain"
)

// KeyFunc extracts a foreign key from a candidate.
type KeyFunc[T any] func(T) int64

// Resolver narrows a candidate set by two selected keys. The typical
// instance filters game accounts by the advertisement's chosen user
// and game. A key value of 0 means "not selected".
type Resolver[T any] struct {
	mu sync.Mutex

	id   KeyFunc[T]
	refA KeyFunc[T]
	refB KeyFunc[T]

	candidates []T
	keyA       int64
	keyB       int64
	filtered   []T
	selected   int64
}

// NewResolver creates a resolver. id extracts a candidate's own id,
// refA and refB the two governing foreign keys.
func NewResolver[T any](id, refA, refB KeyFunc[T]) *Resolver[T] {
	return &Resolver[T]{id: id, refA: refA, refB: refB}
}

// SetCandidates replaces the full candidate set and recomputes the
// filtered subset. The slice is copied, never mutated.
func (r *Resolver[T]) SetCandidates(candidates []T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = append([]T(nil), candidates...)
	r.recompute()
}

// SetKeyA selects the first governing key and reports whether the
// dependent selection was cleared because it no longer qualifies.
func (r *Resolver[T]) SetKeyA(v int64) (cleared bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keyA = v
	return r.recompute()
}

// SetKeyB selects the second governing key, symmetric to SetKeyA.
func (r *Resolver[T]) SetKeyB(v int64) (cleared bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keyB = v
	return r.recompute()
}

// recompute rebuilds filtered and drops a selection that fell out of
// it. Caller holds the lock.
func (r *Resolver[T]) recompute() (cleared bool) {
	r.filtered = nil
	if r.keyA != 0 && r.keyB != 0 {
		for _, c := range r.candidates {
			if r.refA(c) == r.keyA && r.refB(c) == r.keyB {
				r.filtered = append(r.filtered, c)
			}
		}
	}

	if r.selected != 0 && !r.contains(r.selected) {
		r.selected = 0
		return true
	}
	return false
}

func (r *Resolver[T]) contains(id int64) bool {
	for _, c := range r.filtered {
		if r.id(c) == id {
			return true
		}
	}
	return false
}

// Select picks a dependent candidate by id, or clears the selection
// when id is 0. Ids outside the filtered subset are rejected.
func (r *Resolver[T]) Select(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == 0 {
		r.selected = 0
		return nil
	}
	if !r.contains(id) {
		return domain.NewAppError(domain.ErrCodeSelectionNotAllowed,
			"Selection is not among the candidates matching the governing keys", 400, nil)
	}
	r.selected = id
	return nil
}

// Selected returns the currently selected candidate id, 0 for none.
func (r *Resolver[T]) Selected() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// SelectedRef returns the selection as a write-side reference, nil
// when nothing is selected.
func (r *Resolver[T]) SelectedRef() *domain.Ref {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.selected == 0 {
		return nil
	}
	return &domain.Ref{ID: r.selected}
}

// Contains reports whether id is in the current filtered subset.
func (r *Resolver[T]) Contains(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contains(id)
}

// Filtered returns the candidates matching both governing keys,
// empty whenever either key is unset.
func (r *Resolver[T]) Filtered() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.filtered...)
}

// Enabled reports whether the dependent dropdown is usable: both
// keys chosen and at least one candidate matching.
func (r *Resolver[T]) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.keyA != 0 && r.keyB != 0 && len(r.filtered) > 0
}

// Hint explains a disabled dropdown to the user.
func (r *Resolver[T]) Hint() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.keyA == 0 || r.keyB == 0:
		return "Select a user and a game first"
	case len(r.filtered) == 0:
		return "No game accounts are available for this user and game"
	default:
		return ""
	}
}
