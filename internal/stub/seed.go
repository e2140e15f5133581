package stub

import (
	"fmt"
	"time"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/shopspring/decimal"
)

// Seed fills the store with a small, internally consistent data set
// for local development. Every reference it creates resolves, so the
// store's referential checks never reject a seeded record.
func Seed(store *Store) error {
	users := []domain.UserDraft{
		{Name: "Alice Johnson", Email: "alice@example.com", Password: "secret01"},
		{Name: "Bruno Costa", Email: "bruno@example.com", Password: "secret02"},
		{Name: "Carla Mendes", Email: "carla@example.com", Password: "secret03"},
	}
	userIDs := make([]int64, 0, len(users))
	for _, d := range users {
		userIDs = append(userIDs, store.CreateUser(d).ID)
	}

	games := []domain.GameDraft{
		{Name: "Eternal Siege", Platform: domain.PlatformPC, Price: decimal.NewFromFloat(59.90), Description: "Large scale castle sieges"},
		{Name: "Neon Drift", Platform: domain.PlatformPlaystation5, Price: decimal.NewFromFloat(39.90), Description: "Arcade street racing"},
		{Name: "Pocket Legends", Platform: domain.PlatformMobile, Price: decimal.Zero, Description: "Free to play collectible battler"},
	}
	gameIDs := make([]int64, 0, len(games))
	for _, d := range games {
		gameIDs = append(gameIDs, store.CreateGame(d).ID)
	}

	accounts := []domain.GameAccountDraft{
		{User: domain.Ref{ID: userIDs[0]}, Game: domain.Ref{ID: gameIDs[0]}, CharacterName: "Ashbringer", Level: 72, Balance: decimal.NewFromFloat(1250.50)},
		{User: domain.Ref{ID: userIDs[0]}, Game: domain.Ref{ID: gameIDs[1]}, CharacterName: "NitroAlice", Level: 14, Balance: decimal.NewFromFloat(80)},
		{User: domain.Ref{ID: userIDs[1]}, Game: domain.Ref{ID: gameIDs[0]}, CharacterName: "Ironclad", Level: 55, Balance: decimal.NewFromFloat(430)},
		{User: domain.Ref{ID: userIDs[2]}, Game: domain.Ref{ID: gameIDs[2]}, CharacterName: "Sparrow", Level: 98, Balance: decimal.Zero},
	}
	accountIDs := make([]int64, 0, len(accounts))
	for _, d := range accounts {
		acc, err := store.CreateAccount(d)
		if err != nil {
			return fmt.Errorf("seed account: %w", err)
		}
		accountIDs = append(accountIDs, acc.ID)
	}

	ads := []domain.AdvertisementDraft{
		{
			User:        domain.Ref{ID: userIDs[0]},
			Game:        domain.Ref{ID: gameIDs[0]},
			GameAccount: &domain.Ref{ID: accountIDs[0]},
			Description: "Level 72 knight, full siege gear",
			Price:       decimal.NewFromFloat(350),
			Available:   true,
		},
		{
			User:        domain.Ref{ID: userIDs[1]},
			Game:        domain.Ref{ID: gameIDs[0]},
			GameAccount: &domain.Ref{ID: accountIDs[2]},
			Description: "Mid level account, rare mounts included",
			Price:       decimal.NewFromFloat(120),
			Available:   true,
		},
		{
			User:        domain.Ref{ID: userIDs[2]},
			Game:        domain.Ref{ID: gameIDs[2]},
			Description: "Coaching for new players",
			Price:       decimal.NewFromFloat(15),
			Available:   false,
		},
	}
	for _, d := range ads {
		if _, err := store.CreateAd(d); err != nil {
			return fmt.Errorf("seed advertisement: %w", err)
		}
	}

	now := time.Now().UTC()
	transactions := []domain.TransactionDraft{
		{
			User:        domain.Ref{ID: userIDs[1]},
			GameAccount: &domain.Ref{ID: accountIDs[0]},
			Description: "Purchase of siege knight account",
			Amount:      decimal.NewFromFloat(350),
			Date:        now.Add(-72 * time.Hour),
			Type:        domain.TransactionTypePurchase,
			Status:      domain.TransactionStatusCompleted,
		},
		{
			User:        domain.Ref{ID: userIDs[0]},
			Description: "Wallet top up",
			Amount:      decimal.NewFromFloat(200),
			Date:        now.Add(-24 * time.Hour),
			Type:        domain.TransactionTypeDeposit,
			Status:      domain.TransactionStatusCompleted,
		},
		{
			User:        domain.Ref{ID: userIDs[2]},
			Description: "Withdrawal to bank account",
			Amount:      decimal.NewFromFloat(90),
			Date:        now.Add(-2 * time.Hour),
			Type:        domain.TransactionTypeWithdrawal,
			Status:      domain.TransactionStatusPending,
		},
	}
	for _, d := range transactions {
		if _, err := store.CreateTransaction(d); err != nil {
			return fmt.Errorf("seed transaction: %w", err)
		}
	}

	return nil
}
