package app

import (
	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/gateway"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
)

// InitGatewayClient creates the shared HTTP client for the remote
// marketplace server.
func (a *application) InitGatewayClient(log *logger.Logger) *gateway.Client {
	return gateway.NewClient(gateway.Options{
		BaseURL:   a.config.API.BaseURL,
		Timeout:   a.config.API.Timeout,
		RetryMax:  a.config.API.RetryMax,
		RetryWait: a.config.API.RetryWait,
	}, log)
}

func (a *application) InitUserGateway(c *gateway.Client) domain.UserGateway {
	return gateway.NewUserGateway(c)
}

func (a *application) InitGameGateway(c *gateway.Client) domain.GameGateway {
	return gateway.NewGameGateway(c)
}

func (a *application) InitGameAccountGateway(c *gateway.Client) domain.GameAccountGateway {
	return gateway.NewGameAccountGateway(c)
}

func (a *application) InitAdvertisementGateway(c *gateway.Client) domain.AdvertisementGateway {
	return gateway.NewAdvertisementGateway(c)
}

func (a *application) InitTransactionGateway(c *gateway.Client) domain.TransactionGateway {
	return gateway.NewTransactionGateway(c)
}
