package domain

import "github.com/shopspring/decimal"

// Platform identifies the system a game runs on
type Platform string

const (
	PlatformPC            Platform = "PC"
	PlatformPlaystation5  Platform = "PlayStation 5"
	PlatformPlaystation4  Platform = "PlayStation 4"
	PlatformXboxSeries    Platform = "Xbox Series X/S"
	PlatformXboxOne       Platform = "Xbox One"
	PlatformSwitch        Platform = "Nintendo Switch"
	PlatformMobile        Platform = "Mobile"
	PlatformCrossPlatform Platform = "Cross-platform"
)

// Platforms lists every selectable platform, in display order.
func Platforms() []Platform {
	return []Platform{
		PlatformPC,
		PlatformPlaystation5,
		PlatformPlaystation4,
		PlatformXboxSeries,
		PlatformXboxOne,
		PlatformSwitch,
		PlatformMobile,
		PlatformCrossPlatform,
	}
}

// Valid reports whether p is a member of the platform enum.
func (p Platform) Valid() bool {
	for _, known := range Platforms() {
		if p == known {
			return true
		}
	}
	return false
}

// Game represents a title accounts can be traded for
type Game struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Platform    Platform        `json:"platform"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// GameDraft is the wire shape for creating or updating a game
type GameDraft struct {
	Name        string          `json:"name"`
	Platform    Platform        `json:"platform"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// Draft converts a read model into an editable draft
func (g Game) Draft() GameDraft {
	return GameDraft{
		Name:        g.Name,
		Platform:    g.Platform,
		Price:       g.Price,
		Description: g.Description,
	}
}

// GameGateway defines the remote interface for game records
type GameGateway interface {
	Gateway[Game, GameDraft]
}
