package app

import (
	"github.com/garciapp2/gameaccounts/internal/config"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
