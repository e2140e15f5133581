package domain

import "github.com/shopspring/decimal"

// Advertisement represents a sale listing. The optional game account,
// when present, always belongs to the advertisement's own user and
// game pair; selection is restricted up front so other combinations
// are never submitted.
type Advertisement struct {
	ID          int64           `json:"id"`
	User        User            `json:"user"`
	Game        Game            `json:"game"`
	GameAccount *GameAccount    `json:"gameAccount,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// AdvertisementDraft is the wire shape for creating or updating an
// advertisement. The account reference stays nil when no account is
// attached.
type AdvertisementDraft struct {
	User        Ref             `json:"user"`
	Game        Ref             `json:"game"`
	GameAccount *Ref            `json:"gameAccount,omitempty"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Available   bool            `json:"available"`
}

// Draft converts a read model into an editable draft
func (ad Advertisement) Draft() AdvertisementDraft {
	draft := AdvertisementDraft{
		User:        Ref{ID: ad.User.ID},
		Game:        Ref{ID: ad.Game.ID},
		Description: ad.Description,
		Price:       ad.Price,
		Available:   ad.Available,
	}
	if ad.GameAccount != nil {
		draft.GameAccount = &Ref{ID: ad.GameAccount.ID}
	}
	return draft
}

// AdvertisementGateway defines the remote interface for advertisements
type AdvertisementGateway interface {
	Gateway[Advertisement, AdvertisementDraft]
}
