package gateway

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/garciapp2/gameaccounts/internal/stub"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store  *stub.Store
	client *Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewLogger("test", "debug")
	store := stub.NewStore()
	server := httptest.NewServer(stub.NewServer(store, log, "").Handler())
	t.Cleanup(server.Close)

	client := NewClient(Options{BaseURL: server.URL, RetryMax: 0}, log)
	return &fixture{store: store, client: client}
}

func TestGameRoundTrip(t *testing.T) {
	f := newFixture(t)
	games := NewGameGateway(f.client)
	ctx := context.Background()

	created, err := games.Create(ctx, domain.GameDraft{
		Name:     "Foo",
		Platform: domain.PlatformPC,
		Price:    decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := games.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "Foo", fetched.Name)
	assert.Equal(t, domain.PlatformPC, fetched.Platform)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("10.00")))
}

func TestGetByIDUnknownIsNotFound(t *testing.T) {
	f := newFixture(t)
	games := NewGameGateway(f.client)

	_, err := games.GetByID(context.Background(), 9999)

	assert.True(t, domain.IsNotFound(err))
}

func TestDeleteThenGetIsNotFound(t *testing.T) {
	f := newFixture(t)
	users := NewUserGateway(f.client)
	ctx := context.Background()

	created, err := users.Create(ctx, domain.UserDraft{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, created.ID))

	_, err = users.GetByID(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestListPageWindowsAndCounts(t *testing.T) {
	f := newFixture(t)
	users := NewUserGateway(f.client)
	ctx := context.Background()

	names := []string{"Alice", "Bruno", "Carla", "Dora", "Edu", "Fran", "Gil"}
	for _, name := range names {
		f.store.CreateUser(domain.UserDraft{
			Name: name, Email: name + "@example.com", Password: "secret1",
		})
	}

	page, err := users.ListPage(ctx, domain.PageRequest{Page: 1, Size: 3})
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
	assert.Equal(t, int64(7), page.TotalElements)
	// name asc is the default sort, so page 1 starts at the 4th name
	assert.Equal(t, "Dora", page.Content[0].Name)

	beyond, err := users.ListPage(ctx, domain.PageRequest{Page: 5, Size: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond.Content)
	assert.Equal(t, int64(7), beyond.TotalElements)
}

func TestSearchByNamePaginates(t *testing.T) {
	f := newFixture(t)
	users := NewUserGateway(f.client)
	ctx := context.Background()

	for _, name := range []string{"Alice", "Alina", "Bruno"} {
		f.store.CreateUser(domain.UserDraft{
			Name: name, Email: name + "@example.com", Password: "secret1",
		})
	}

	page, err := users.Search(ctx, domain.FilterByName, "Ali", domain.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestUnsupportedFilterFailsWithoutNetwork(t *testing.T) {
	log := logger.NewLogger("test", "debug")
	// Unroutable base URL: the filter check must fire before any dial.
	client := NewClient(Options{BaseURL: "http://127.0.0.1:1", RetryMax: 0}, log)
	users := NewUserGateway(client)

	_, err := users.Search(context.Background(), domain.FilterByMinPrice, "10", domain.PageRequest{})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeUnsupportedFilter, appErr.Code)
}

func TestUpdateUserEmptyPasswordKeepsStored(t *testing.T) {
	f := newFixture(t)
	users := NewUserGateway(f.client)
	ctx := context.Background()

	created, err := users.Create(ctx, domain.UserDraft{
		Name: "Alice", Email: "alice@example.com", Password: "original1",
	})
	require.NoError(t, err)

	_, err = users.Update(ctx, created.ID, domain.UserDraft{
		Name: "Alice Updated", Email: "alice@example.com",
	})
	require.NoError(t, err)

	stored, err := f.store.GetUser(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", stored.Name)
	assert.Equal(t, "original1", stored.Password)
}

func TestPasswordNeverSerialized(t *testing.T) {
	f := newFixture(t)
	users := NewUserGateway(f.client)
	ctx := context.Background()

	created, err := users.Create(ctx, domain.UserDraft{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	})
	require.NoError(t, err)

	fetched, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Password)
}

func TestListByUserScopesAccounts(t *testing.T) {
	f := newFixture(t)
	accounts := NewGameAccountGateway(f.client)
	ctx := context.Background()

	alice := f.store.CreateUser(domain.UserDraft{Name: "Alice", Email: "a@example.com", Password: "secret1"})
	bruno := f.store.CreateUser(domain.UserDraft{Name: "Bruno", Email: "b@example.com", Password: "secret1"})
	game := f.store.CreateGame(domain.GameDraft{Name: "Eternal Siege", Platform: domain.PlatformPC, Price: decimal.Zero})

	for _, owner := range []int64{alice.ID, alice.ID, bruno.ID} {
		_, err := f.store.CreateAccount(domain.GameAccountDraft{
			User: domain.Ref{ID: owner}, Game: domain.Ref{ID: game.ID},
			CharacterName: "Char", Level: 10, Balance: decimal.Zero,
		})
		require.NoError(t, err)
	}

	mine, err := accounts.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, a := range mine {
		assert.Equal(t, alice.ID, a.User.ID)
	}
}

func TestCreateAdvertisementWithMismatchedAccountRejected(t *testing.T) {
	f := newFixture(t)
	ads := NewAdvertisementGateway(f.client)
	ctx := context.Background()

	alice := f.store.CreateUser(domain.UserDraft{Name: "Alice", Email: "a@example.com", Password: "secret1"})
	bruno := f.store.CreateUser(domain.UserDraft{Name: "Bruno", Email: "b@example.com", Password: "secret1"})
	game := f.store.CreateGame(domain.GameDraft{Name: "Eternal Siege", Platform: domain.PlatformPC, Price: decimal.Zero})
	account, err := f.store.CreateAccount(domain.GameAccountDraft{
		User: domain.Ref{ID: bruno.ID}, Game: domain.Ref{ID: game.ID},
		CharacterName: "Char", Level: 10, Balance: decimal.Zero,
	})
	require.NoError(t, err)

	_, err = ads.Create(ctx, domain.AdvertisementDraft{
		User:        domain.Ref{ID: alice.ID},
		Game:        domain.Ref{ID: game.ID},
		GameAccount: &domain.Ref{ID: account.ID},
		Description: "not my account",
		Price:       decimal.NewFromInt(10),
	})

	appErr, ok := domain.IsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, domain.ErrCodeTransport, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestSearchAdvertisementsByPriceBounds(t *testing.T) {
	f := newFixture(t)
	ads := NewAdvertisementGateway(f.client)
	ctx := context.Background()

	alice := f.store.CreateUser(domain.UserDraft{Name: "Alice", Email: "a@example.com", Password: "secret1"})
	game := f.store.CreateGame(domain.GameDraft{Name: "Eternal Siege", Platform: domain.PlatformPC, Price: decimal.Zero})
	for _, price := range []int64{50, 150, 300} {
		_, err := f.store.CreateAd(domain.AdvertisementDraft{
			User: domain.Ref{ID: alice.ID}, Game: domain.Ref{ID: game.ID},
			Description: "listing", Price: decimal.NewFromInt(price), Available: true,
		})
		require.NoError(t, err)
	}

	cheap, err := ads.Search(ctx, domain.FilterByMaxPrice, "150", domain.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), cheap.TotalElements)

	expensive, err := ads.Search(ctx, domain.FilterByMinPrice, "150", domain.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), expensive.TotalElements)
}
