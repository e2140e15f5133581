package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUserDraftNeverCarriesStoredPassword(t *testing.T) {
	u := User{ID: 1, Name: "Alice", Email: "alice@example.com", Password: "stored-secret"}

	draft := u.Draft()

	assert.Empty(t, draft.Password)
	assert.Equal(t, "Alice", draft.Name)
}

func TestDraftsCollapseRelationsToRefs(t *testing.T) {
	account := GameAccount{
		ID:            3,
		User:          User{ID: 1, Name: "Alice"},
		Game:          Game{ID: 2, Name: "Eternal Siege"},
		CharacterName: "Ashbringer",
		Level:         72,
		Balance:       decimal.NewFromInt(100),
	}

	accDraft := account.Draft()
	assert.Equal(t, Ref{ID: 1}, accDraft.User)
	assert.Equal(t, Ref{ID: 2}, accDraft.Game)

	ad := Advertisement{
		ID:          4,
		User:        account.User,
		Game:        account.Game,
		GameAccount: &account,
		Description: "listing",
		Price:       decimal.NewFromInt(10),
	}
	adDraft := ad.Draft()
	assert.Equal(t, &Ref{ID: 3}, adDraft.GameAccount)

	ad.GameAccount = nil
	assert.Nil(t, ad.Draft().GameAccount)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, PlatformPC.Valid())
	assert.False(t, Platform("Dreamcast").Valid())

	assert.True(t, TransactionTypeSale.Valid())
	assert.False(t, TransactionType("gift").Valid())

	assert.True(t, TransactionStatusRefunded.Valid())
	assert.False(t, TransactionStatus("lost").Valid())
}
