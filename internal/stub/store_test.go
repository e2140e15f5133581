package stub

import (
	"testing"
	"time"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedUserAndGame(t *testing.T, s *Store) (domain.User, domain.Game) {
	t.Helper()
	u := s.CreateUser(domain.UserDraft{Name: "Alice", Email: "alice@example.com", Password: "secret1"})
	g := s.CreateGame(domain.GameDraft{Name: "Eternal Siege", Platform: domain.PlatformPC, Price: decimal.Zero})
	return u, g
}

func TestIDsAreMonotonic(t *testing.T) {
	s := NewStore()

	first := s.CreateUser(domain.UserDraft{Name: "A", Email: "a@example.com", Password: "secret1"})
	second := s.CreateGame(domain.GameDraft{Name: "G", Platform: domain.PlatformPC, Price: decimal.Zero})

	assert.Equal(t, first.ID+1, second.ID)
}

func TestAccountDraftEmbedsReferences(t *testing.T) {
	s := NewStore()
	u, g := seedUserAndGame(t, s)

	acc, err := s.CreateAccount(domain.GameAccountDraft{
		User: domain.Ref{ID: u.ID}, Game: domain.Ref{ID: g.ID},
		CharacterName: "Ashbringer", Level: 72, Balance: decimal.NewFromInt(100),
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", acc.User.Name)
	assert.Equal(t, "Eternal Siege", acc.Game.Name)
}

func TestAccountUnknownReferenceRejected(t *testing.T) {
	s := NewStore()
	u, _ := seedUserAndGame(t, s)

	_, err := s.CreateAccount(domain.GameAccountDraft{
		User: domain.Ref{ID: u.ID}, Game: domain.Ref{ID: 999},
		CharacterName: "Ashbringer", Level: 1, Balance: decimal.Zero,
	})

	assert.ErrorIs(t, err, ErrBadReference)
}

func TestAdvertisementAccountMustBelongToPair(t *testing.T) {
	s := NewStore()
	alice, g := seedUserAndGame(t, s)
	bruno := s.CreateUser(domain.UserDraft{Name: "Bruno", Email: "b@example.com", Password: "secret1"})

	acc, err := s.CreateAccount(domain.GameAccountDraft{
		User: domain.Ref{ID: bruno.ID}, Game: domain.Ref{ID: g.ID},
		CharacterName: "Ironclad", Level: 10, Balance: decimal.Zero,
	})
	require.NoError(t, err)

	_, err = s.CreateAd(domain.AdvertisementDraft{
		User: domain.Ref{ID: alice.ID}, Game: domain.Ref{ID: g.ID},
		GameAccount: &domain.Ref{ID: acc.ID},
		Description: "not my account", Price: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, ErrBadReference)

	ad, err := s.CreateAd(domain.AdvertisementDraft{
		User: domain.Ref{ID: bruno.ID}, Game: domain.Ref{ID: g.ID},
		GameAccount: &domain.Ref{ID: acc.ID},
		Description: "my account", Price: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, ad.GameAccount)
	assert.Equal(t, acc.ID, ad.GameAccount.ID)
}

func TestUpdateUserEmptyPasswordKeepsCredential(t *testing.T) {
	s := NewStore()
	u := s.CreateUser(domain.UserDraft{Name: "Alice", Email: "alice@example.com", Password: "original1"})

	updated, err := s.UpdateUser(u.ID, domain.UserDraft{Name: "Alice B", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "original1", updated.Password)

	replaced, err := s.UpdateUser(u.ID, domain.UserDraft{Name: "Alice B", Email: "alice@example.com", Password: "fresh99"})
	require.NoError(t, err)
	assert.Equal(t, "fresh99", replaced.Password)
}

func TestDeleteUnknownIsNotFound(t *testing.T) {
	s := NewStore()

	assert.ErrorIs(t, s.DeleteUser(1), ErrNotFound)
	assert.ErrorIs(t, s.DeleteGame(1), ErrNotFound)
	assert.ErrorIs(t, s.DeleteAccount(1), ErrNotFound)
	assert.ErrorIs(t, s.DeleteAd(1), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTransaction(1), ErrNotFound)
}

func TestListTransactionsDefaultsToDateDesc(t *testing.T) {
	s := NewStore()
	u, _ := seedUserAndGame(t, s)

	drafts := []domain.TransactionDraft{
		{User: domain.Ref{ID: u.ID}, Description: "old", Amount: decimal.NewFromInt(1),
			Date: date(2024, 1, 1), Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusCompleted},
		{User: domain.Ref{ID: u.ID}, Description: "new", Amount: decimal.NewFromInt(1),
			Date: date(2024, 6, 1), Type: domain.TransactionTypeDeposit, Status: domain.TransactionStatusCompleted},
	}
	for _, d := range drafts {
		_, err := s.CreateTransaction(d)
		require.NoError(t, err)
	}

	list := s.ListTransactions("date", "desc")
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Description)
	assert.Equal(t, "old", list[1].Description)
}

func TestSeedResolvesEveryReference(t *testing.T) {
	s := NewStore()

	require.NoError(t, Seed(s))

	assert.NotEmpty(t, s.ListUsers("name", "asc"))
	assert.NotEmpty(t, s.ListGames("name", "asc"))
	assert.NotEmpty(t, s.ListAccounts())
	assert.NotEmpty(t, s.ListAds())
	assert.NotEmpty(t, s.ListTransactions("date", "desc"))

	for _, ad := range s.ListAds() {
		if ad.GameAccount != nil {
			assert.Equal(t, ad.User.ID, ad.GameAccount.User.ID)
			assert.Equal(t, ad.Game.ID, ad.GameAccount.Game.ID)
		}
	}
}

func TestPageWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	full := pageWindow(items, 0, 10)
	assert.Equal(t, items, full.Content)
	assert.Equal(t, int64(5), full.TotalElements)

	middle := pageWindow(items, 1, 2)
	assert.Equal(t, []int{3, 4}, middle.Content)

	tail := pageWindow(items, 2, 2)
	assert.Equal(t, []int{5}, tail.Content)

	beyond := pageWindow(items, 9, 2)
	assert.Empty(t, beyond.Content)
	assert.Equal(t, int64(5), beyond.TotalElements)
}
