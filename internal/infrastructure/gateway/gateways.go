package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/garciapp2/gameaccounts/internal/domain"
)

// NewUserGateway creates the remote gateway for user records
func NewUserGateway(c *Client) domain.UserGateway {
	return &entityClient[domain.User, domain.UserDraft]{
		client: c,
		path:   "users",
		searches: map[domain.FilterKind]searchRoute{
			domain.FilterByName:  {segment: "name", param: "name"},
			domain.FilterByEmail: {segment: "email", param: "email"},
		},
		defaultSort:      "name",
		defaultDirection: "asc",
	}
}

// NewGameGateway creates the remote gateway for game records
func NewGameGateway(c *Client) domain.GameGateway {
	return &entityClient[domain.Game, domain.GameDraft]{
		client: c,
		path:   "games",
		searches: map[domain.FilterKind]searchRoute{
			domain.FilterByName: {segment: "name", param: "name"},
		},
		defaultSort:      "name",
		defaultDirection: "asc",
	}
}

// NewAdvertisementGateway creates the remote gateway for advertisements
func NewAdvertisementGateway(c *Client) domain.AdvertisementGateway {
	return &entityClient[domain.Advertisement, domain.AdvertisementDraft]{
		client: c,
		path:   "advertisements",
		searches: map[domain.FilterKind]searchRoute{
			domain.FilterByDescription: {segment: "description", param: "description"},
			domain.FilterByMinPrice:    {segment: "min-price", param: "minPrice"},
			domain.FilterByMaxPrice:    {segment: "max-price", param: "maxPrice"},
		},
	}
}

// NewTransactionGateway creates the remote gateway for transactions
func NewTransactionGateway(c *Client) domain.TransactionGateway {
	return &entityClient[domain.Transaction, domain.TransactionDraft]{
		client:           c,
		path:             "transactions",
		defaultSort:      "date",
		defaultDirection: "desc",
	}
}

// accountClient adds the scoped listings the server offers for game
// accounts on top of the uniform CRUD surface.
type accountClient struct {
	entityClient[domain.GameAccount, domain.GameAccountDraft]
}

// NewGameAccountGateway creates the remote gateway for game accounts
func NewGameAccountGateway(c *Client) domain.GameAccountGateway {
	return &accountClient{
		entityClient: entityClient[domain.GameAccount, domain.GameAccountDraft]{
			client: c,
			path:   "game-accounts",
		},
	}
}

func (a *accountClient) ListByUser(ctx context.Context, userID int64) ([]domain.GameAccount, error) {
	op := fmt.Sprintf("game-accounts by user %d", userID)
	var items []domain.GameAccount
	u := a.client.url(a.path) + "/by-user/" + strconv.FormatInt(userID, 10)
	err := a.client.send(ctx, op, http.MethodGet, u, nil, http.StatusOK, &items)
	return items, err
}

func (a *accountClient) ListByGame(ctx context.Context, gameID int64) ([]domain.GameAccount, error) {
	op := fmt.Sprintf("game-accounts by game %d", gameID)
	var items []domain.GameAccount
	u := a.client.url(a.path) + "/by-game/" + strconv.FormatInt(gameID, 10)
	err := a.client.send(ctx, op, http.MethodGet, u, nil, http.StatusOK, &items)
	return items, err
}
