package app

import (
	"context"

	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/garciapp2/gameaccounts/internal/stub"
	"go.uber.org/fx"
)

// InitStubStore creates the in-memory store with seeded sample data.
func (a *application) InitStubStore(log *logger.Logger) (*stub.Store, error) {
	store := stub.NewStore()
	if err := stub.Seed(store); err != nil {
		return nil, err
	}
	log.Info("stub store seeded")
	return store, nil
}

// InitStubServer initializes the stub server with all dependencies
func (a *application) InitStubServer(store *stub.Store, log *logger.Logger) *stub.Server {
	return stub.NewServer(store, log, a.config.GetStubAddress())
}

// StartStubServer binds the server to the fx lifecycle.
func (a *application) StartStubServer(lc fx.Lifecycle, server *stub.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.WithError(err).Fatal("stub server stopped")
				}
			}()
			log.Info("stub server listening")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return log.Sync()
		},
	})
}
