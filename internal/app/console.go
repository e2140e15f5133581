package app

import (
	"os"

	"github.com/garciapp2/gameaccounts/internal/console"
	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
)

// InitConsole initializes the console with all entity gateways
func (a *application) InitConsole(
	users domain.UserGateway,
	games domain.GameGateway,
	accounts domain.GameAccountGateway,
	ads domain.AdvertisementGateway,
	transactions domain.TransactionGateway,
	log *logger.Logger,
) *console.Console {
	return console.NewConsole(users, games, accounts, ads, transactions, log, os.Stdout)
}
