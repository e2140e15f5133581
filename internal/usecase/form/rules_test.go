package form

import (
	"testing"
	"time"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateUserDraftPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		editing  bool
		wantErr  bool
	}{
		{
			name:     "Create_Empty_Password",
			password: "",
			editing:  false,
			wantErr:  true,
		},
		{
			name:     "Create_Five_Chars",
			password: "abcde",
			editing:  false,
			wantErr:  true,
		},
		{
			name:     "Create_Six_Chars",
			password: "abcdef",
			editing:  false,
			wantErr:  false,
		},
		{
			name:     "Edit_Empty_Keeps_Stored",
			password: "",
			editing:  true,
			wantErr:  false,
		},
		{
			name:     "Edit_Short_Replacement",
			password: "abc",
			editing:  true,
			wantErr:  true,
		},
		{
			name:     "Edit_Valid_Replacement",
			password: "abcdef",
			editing:  true,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUserDraft(domain.UserDraft{
				Name:     "Alice",
				Email:    "alice@example.com",
				Password: tt.password,
			}, tt.editing)

			if tt.wantErr {
				assert.Contains(t, errs, "password")
			} else {
				assert.NotContains(t, errs, "password")
			}
		})
	}
}

func TestValidateUserDraftEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		message string
	}{
		{"Empty", "", "Email is required"},
		{"No_At", "alice.example.com", "Email is invalid"},
		{"No_Domain_Dot", "alice@example", "Email is invalid"},
		{"Valid", "alice@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateUserDraft(domain.UserDraft{
				Name:     "Alice",
				Email:    tt.email,
				Password: "secret1",
			}, false)

			if tt.message == "" {
				assert.NotContains(t, errs, "email")
			} else {
				assert.Equal(t, tt.message, errs["email"])
			}
		})
	}
}

func TestValidateGameDraft(t *testing.T) {
	valid := domain.GameDraft{
		Name:     "Eternal Siege",
		Platform: domain.PlatformPC,
		Price:    decimal.NewFromInt(60),
	}
	assert.Empty(t, ValidateGameDraft(valid, false))

	free := valid
	free.Price = decimal.Zero
	assert.Empty(t, ValidateGameDraft(free, false))

	negative := valid
	negative.Price = decimal.NewFromInt(-1)
	assert.Contains(t, ValidateGameDraft(negative, false), "price")

	unknown := valid
	unknown.Platform = "Dreamcast"
	assert.Contains(t, ValidateGameDraft(unknown, false), "platform")

	empty := domain.GameDraft{}
	errs := ValidateGameDraft(empty, false)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "platform")
}

func TestValidateGameAccountDraftLevelBounds(t *testing.T) {
	draft := func(level int) domain.GameAccountDraft {
		return domain.GameAccountDraft{
			User:          domain.Ref{ID: 1},
			Game:          domain.Ref{ID: 2},
			CharacterName: "Ashbringer",
			Level:         level,
			Balance:       decimal.Zero,
		}
	}

	assert.Contains(t, ValidateGameAccountDraft(draft(0), false), "level")
	assert.NotContains(t, ValidateGameAccountDraft(draft(1), false), "level")
	assert.NotContains(t, ValidateGameAccountDraft(draft(100), false), "level")
	assert.Contains(t, ValidateGameAccountDraft(draft(101), false), "level")
}

func TestValidateAdvertisementDraft(t *testing.T) {
	valid := domain.AdvertisementDraft{
		User:        domain.Ref{ID: 1},
		Game:        domain.Ref{ID: 2},
		Description: "Level 72 knight",
		Price:       decimal.NewFromInt(350),
	}
	assert.Empty(t, ValidateAdvertisementDraft(valid, false))

	zeroPrice := valid
	zeroPrice.Price = decimal.Zero
	assert.Contains(t, ValidateAdvertisementDraft(zeroPrice, false), "price")

	noRefs := domain.AdvertisementDraft{
		Description: "orphan",
		Price:       decimal.NewFromInt(10),
		GameAccount: &domain.Ref{ID: 3},
	}
	errs := ValidateAdvertisementDraft(noRefs, false)
	assert.Contains(t, errs, "user")
	assert.Contains(t, errs, "game")
	assert.Contains(t, errs, "gameAccount")
}

func TestValidateTransactionDraft(t *testing.T) {
	valid := domain.TransactionDraft{
		User:        domain.Ref{ID: 1},
		Description: "Wallet top up",
		Amount:      decimal.NewFromInt(200),
		Date:        time.Now(),
		Type:        domain.TransactionTypeDeposit,
		Status:      domain.TransactionStatusPending,
	}
	assert.Empty(t, ValidateTransactionDraft(valid, false))

	invalid := valid
	invalid.Amount = decimal.Zero
	invalid.Type = "gift"
	invalid.Date = time.Time{}
	errs := ValidateTransactionDraft(invalid, false)
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "date")
}
