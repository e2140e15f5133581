// Package form implements the draft/validate/save state machine
// behind every create and edit screen.
package form

import (
	"context"
	"fmt"
	"sync"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State identifies where a form session is in its lifecycle.
type State string

const (
	// StateLoading: reference lists (and the target entity when
	// editing) are being fetched; the form is not rendered yet.
	StateLoading State = "loading"

	// StateReady: draft fields are editable and submittable.
	StateReady State = "ready"

	// StateSaving: a create or update is in flight; submission is
	// disabled until it resolves.
	StateSaving State = "saving"

	// StateSucceeded: the save completed; the screen navigates away.
	StateSucceeded State = "succeeded"

	// StateFailed: the initial load failed; the form never reached
	// Ready and only a blocking message is shown.
	StateFailed State = "failed"
)

// Validator evaluates every rule against the draft and returns one
// message per failed field. It must not short-circuit: all errors
// are surfaced at once. editing is true for update forms.
type Validator[D any] func(draft D, editing bool) map[string]string

// Loader fetches one piece of reference data during Load.
type Loader func(ctx context.Context) error

// Config wires a session to its entity.
type Config[D any] struct {
	// Entity names the record in user-facing messages, e.g. "user".
	Entity   string
	Validate Validator[D]
	Create   func(ctx context.Context, draft D) error
	Update   func(ctx context.Context, id int64, draft D) error
	Logger   *logger.Logger
}

// Session holds one form's draft, per-field validation errors and
// lifecycle state. A session saves via Create when no target id was
// set before Load, via Update otherwise.
type Session[D any] struct {
	mu sync.Mutex

	cfg Config[D]

	state       State
	editing     bool
	targetID    int64
	draft       D
	fieldErrors map[string]string
	message     string
}

// NewSession creates a session in the Loading state.
func NewSession[D any](cfg Config[D]) *Session[D] {
	return &Session[D]{
		cfg:         cfg,
		state:       StateLoading,
		fieldErrors: map[string]string{},
	}
}

// SetTarget marks the session as editing an existing record. Must be
// called before Load so Submit knows to update instead of create.
func (s *Session[D]) SetTarget(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = true
	s.targetID = id
}

// Load runs every loader concurrently. All must succeed for the
// session to reach Ready; any failure aborts into Failed with no
// partially rendered form, and the first error is returned.
func (s *Session[D]) Load(ctx context.Context, loaders ...Loader) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		load := load
		g.Go(func() error { return load(gctx) })
	}

	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.message = fmt.Sprintf("Could not load %s form data", s.cfg.Entity)
		s.cfg.Logger.WithError(err).Error("Form load failed",
			zap.String("entity", s.cfg.Entity))
		return err
	}
	s.state = StateReady
	return nil
}

// SetDraft replaces the whole draft, e.g. after the edit target has
// been fetched.
func (s *Session[D]) SetDraft(draft D) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = draft
}

// UpdateDraft mutates the draft under the session lock.
func (s *Session[D]) UpdateDraft(mutate func(*D)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.draft)
}

// Draft returns the current draft.
func (s *Session[D]) Draft() D {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// FieldChanged clears the validation error of one field: the user is
// editing it, the stale message would only mislead.
func (s *Session[D]) FieldChanged(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fieldErrors, field)
}

// Submit validates the draft and saves it. Rules for every field run
// before any verdict so all errors surface in one pass; a violation
// keeps the session Ready with populated field errors and no gateway
// call. A save failure also returns to Ready with the draft intact
// so the user can resubmit.
func (s *Session[D]) Submit(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateSaving:
		s.mu.Unlock()
		return domain.NewAppError(domain.ErrCodeSaveInFlight,
			"A save is already in progress", 409, nil)
	case StateReady:
		// proceed
	default:
		state := s.state
		s.mu.Unlock()
		return domain.NewAppError(domain.ErrCodeSessionNotReady,
			fmt.Sprintf("Form is not ready to submit (state %s)", state), 409, nil)
	}

	errs := s.cfg.Validate(s.draft, s.editing)
	if len(errs) > 0 {
		s.fieldErrors = errs
		s.mu.Unlock()
		return domain.NewValidationError(errs)
	}

	s.state = StateSaving
	s.fieldErrors = map[string]string{}
	draft := s.draft
	editing := s.editing
	targetID := s.targetID
	s.mu.Unlock()

	var err error
	if editing {
		err = s.cfg.Update(ctx, targetID, draft)
	} else {
		err = s.cfg.Create(ctx, draft)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.state = StateReady
		if editing {
			s.message = fmt.Sprintf("Could not update %s", s.cfg.Entity)
		} else {
			s.message = fmt.Sprintf("Could not create %s", s.cfg.Entity)
		}
		s.cfg.Logger.WithError(err).Warn("Form save failed",
			zap.String("entity", s.cfg.Entity),
			zap.Bool("editing", editing))
		return err
	}

	s.state = StateSucceeded
	if editing {
		s.message = fmt.Sprintf("%s updated", s.cfg.Entity)
	} else {
		s.message = fmt.Sprintf("%s created", s.cfg.Entity)
	}
	return nil
}

// State returns the session's lifecycle state.
func (s *Session[D]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Editing reports whether the session updates an existing record.
func (s *Session[D]) Editing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editing
}

// FieldErrors returns a copy of the per-field validation errors.
func (s *Session[D]) FieldErrors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.fieldErrors))
	for k, v := range s.fieldErrors {
		out[k] = v
	}
	return out
}

// Message returns the last confirmation or failure message.
func (s *Session[D]) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}
