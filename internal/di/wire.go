//go:build wireinject
// +build wireinject

package di

import (
	"BiasScope/pkg/config"
	"BiasScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Market data and analysis core
		ProvideMarketData,
		ProvideSnapshotBuilder,
		ProvideEngine,
		ProvideCandleCache,

		// Use cases
		ProvideAnalyzeUseCase,
		ProvideCandlesUseCase,

		// HTTP layer
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
