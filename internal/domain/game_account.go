package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// GameAccount represents a playable account owned by a user on one game
type GameAccount struct {
	ID            int64           `json:"id"`
	User          User            `json:"user"`
	Game          Game            `json:"game"`
	CharacterName string          `json:"characterName"`
	Level         int             `json:"level"`
	Balance       decimal.Decimal `json:"balance"`
}

// GameAccountDraft is the wire shape for creating or updating a game
// account. Related entities are submitted as id references, not the
// embedded objects the read model carries.
type GameAccountDraft struct {
	User          Ref             `json:"user"`
	Game          Ref             `json:"game"`
	CharacterName string          `json:"characterName"`
	Level         int             `json:"level"`
	Balance       decimal.Decimal `json:"balance"`
}

// Draft converts a read model into an editable draft, collapsing the
// embedded user and game into id references.
func (a GameAccount) Draft() GameAccountDraft {
	return GameAccountDraft{
		User:          Ref{ID: a.User.ID},
		Game:          Ref{ID: a.Game.ID},
		CharacterName: a.CharacterName,
		Level:         a.Level,
		Balance:       a.Balance,
	}
}

// GameAccountGateway defines the remote interface for game account
// records. Beyond the uniform CRUD surface it exposes the two scoped
// listings the server provides for priming dependent dropdowns.
type GameAccountGateway interface {
	Gateway[GameAccount, GameAccountDraft]

	ListByUser(ctx context.Context, userID int64) ([]GameAccount, error)
	ListByGame(ctx context.Context, gameID int64) ([]GameAccount, error)
}
