package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/garciapp2/gameaccounts/internal/config"
	"github.com/garciapp2/gameaccounts/internal/console"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	LoadConfig(path string) error
	RunStubServer()
	RunConsole(opts console.Options)
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// LoadConfig reads the environment specific config file from path
func (a *application) LoadConfig(path string) error {
	return a.setupViper(path)
}

// RunStubServer starts the in-memory marketplace server and blocks
// until shutdown.
func (a *application) RunStubServer() {
	fmt.Println("[x] Starting Game Accounts Stub Server...")

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitStubStore,
			a.InitStubServer,
		),
		fx.Invoke(a.StartStubServer),
	)

	app.Run()
}

// RunConsole executes a single console command and exits.
func (a *application) RunConsole(opts console.Options) {
	if opts.Size == 0 {
		opts.Size = a.config.PageSizeOrDefault()
	}

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			a.InitLogger,
			a.InitGatewayClient,
			a.InitUserGateway,
			a.InitGameGateway,
			a.InitGameAccountGateway,
			a.InitAdvertisementGateway,
			a.InitTransactionGateway,
			a.InitConsole,
		),
		fx.Invoke(func(c *console.Console, shutdowner fx.Shutdowner) {
			if err := c.Run(a.ctx, opts); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				_ = shutdowner.Shutdown(fx.ExitCode(1))
				return
			}
			_ = shutdowner.Shutdown()
		}),
	)

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
	app.Run()
}
