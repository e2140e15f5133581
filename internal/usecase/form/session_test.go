package form

import (
	"context"
	"errors"
	"testing"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

type savedCall struct {
	id    int64
	draft domain.UserDraft
}

type userSessionFixture struct {
	session *Session[domain.UserDraft]
	created []savedCall
	updated []savedCall
	saveErr error
}

func newUserSession(t *testing.T) *userSessionFixture {
	t.Helper()
	f := &userSessionFixture{}
	f.session = NewSession(Config[domain.UserDraft]{
		Entity:   "user",
		Validate: ValidateUserDraft,
		Create: func(_ context.Context, d domain.UserDraft) error {
			if f.saveErr != nil {
				return f.saveErr
			}
			f.created = append(f.created, savedCall{draft: d})
			return nil
		},
		Update: func(_ context.Context, id int64, d domain.UserDraft) error {
			if f.saveErr != nil {
				return f.saveErr
			}
			f.updated = append(f.updated, savedCall{id: id, draft: d})
			return nil
		},
		Logger: logger.NewLogger("test", "debug"),
	})
	return f
}

func validUserDraft() domain.UserDraft {
	return domain.UserDraft{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
}

func TestLoadAllLoadersSucceed(t *testing.T) {
	f := newUserSession(t)

	err := f.session.Load(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	)

	assert.NoError(t, err)
	assert.Equal(t, StateReady, f.session.State())
}

func TestLoadFailureNeverReachesReady(t *testing.T) {
	f := newUserSession(t)

	err := f.session.Load(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return errors.New("connection refused") },
	)

	assert.Error(t, err)
	assert.Equal(t, StateFailed, f.session.State())
	assert.Equal(t, "Could not load user form data", f.session.Message())

	err = f.session.Submit(context.Background())
	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeSessionNotReady, appErr.Code)
}

func TestSubmitCreateSuccess(t *testing.T) {
	f := newUserSession(t)
	assert.NoError(t, f.session.Load(context.Background()))
	f.session.SetDraft(validUserDraft())

	err := f.session.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, StateSucceeded, f.session.State())
	assert.Equal(t, "user created", f.session.Message())
	assert.Len(t, f.created, 1)
	assert.Empty(t, f.updated)
}

func TestSubmitUpdateUsesTarget(t *testing.T) {
	f := newUserSession(t)
	f.session.SetTarget(42)
	assert.NoError(t, f.session.Load(context.Background()))
	f.session.SetDraft(domain.UserDraft{Name: "Alice", Email: "alice@example.com"})

	err := f.session.Submit(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "user updated", f.session.Message())
	assert.Len(t, f.updated, 1)
	assert.Equal(t, int64(42), f.updated[0].id)
	assert.Empty(t, f.created)
}

func TestSubmitCollectsAllFieldErrors(t *testing.T) {
	f := newUserSession(t)
	assert.NoError(t, f.session.Load(context.Background()))
	f.session.SetDraft(domain.UserDraft{})

	err := f.session.Submit(context.Background())

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeValidation, appErr.Code)
	assert.Equal(t, StateReady, f.session.State())
	assert.Empty(t, f.created)

	fieldErrs := f.session.FieldErrors()
	assert.Len(t, fieldErrs, 3)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")
}

func TestSubmitValidationIsIdempotent(t *testing.T) {
	f := newUserSession(t)
	assert.NoError(t, f.session.Load(context.Background()))
	f.session.SetDraft(domain.UserDraft{})

	first := f.session.Submit(context.Background())
	second := f.session.Submit(context.Background())

	assert.Error(t, first)
	assert.Error(t, second)
	assert.Equal(t, f.session.FieldErrors(), f.session.FieldErrors())
	assert.Equal(t, StateReady, f.session.State())
}

func TestSaveFailureReturnsToReadyWithDraftIntact(t *testing.T) {
	f := newUserSession(t)
	assert.NoError(t, f.session.Load(context.Background()))
	draft := validUserDraft()
	f.session.SetDraft(draft)
	f.saveErr = errors.New("server unavailable")

	err := f.session.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateReady, f.session.State())
	assert.Equal(t, "Could not create user", f.session.Message())
	assert.Equal(t, draft, f.session.Draft())

	f.saveErr = nil
	assert.NoError(t, f.session.Submit(context.Background()))
	assert.Equal(t, StateSucceeded, f.session.State())
}

func TestFieldChangedClearsOneError(t *testing.T) {
	f := newUserSession(t)
	assert.NoError(t, f.session.Load(context.Background()))
	f.session.SetDraft(domain.UserDraft{})

	_ = f.session.Submit(context.Background())
	assert.Contains(t, f.session.FieldErrors(), "name")

	f.session.FieldChanged("name")

	fieldErrs := f.session.FieldErrors()
	assert.NotContains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "email")
}

func TestUpdateDraftMutatesInPlace(t *testing.T) {
	f := newUserSession(t)
	f.session.SetDraft(domain.UserDraft{Name: "Alice"})

	f.session.UpdateDraft(func(d *domain.UserDraft) {
		d.Email = "alice@example.com"
	})

	draft := f.session.Draft()
	assert.Equal(t, "Alice", draft.Name)
	assert.Equal(t, "alice@example.com", draft.Email)
}
