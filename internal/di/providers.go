package di

import (
	"fmt"

	"BiasScope/internal/domain/repository"
	domsvc "BiasScope/internal/domain/service"
	"BiasScope/internal/handler/api"
	"BiasScope/internal/service/binance"
	icache "BiasScope/internal/service/cache"
	"BiasScope/internal/services/confluence"
	"BiasScope/internal/services/indicators"
	"BiasScope/internal/usecase"
	"BiasScope/pkg/config"
	xhttp "BiasScope/pkg/http"
	applogger "BiasScope/pkg/logger"
	"BiasScope/pkg/metrics"
	"BiasScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideMarketData creates the Binance candle source.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return binance.New(cfg.Binance.BaseURL, cfg.Binance.Timeout)
}

// ProvideSnapshotBuilder creates the indicator snapshot builder.
func ProvideSnapshotBuilder() domsvc.SnapshotBuilder {
	return indicators.NewBuilder()
}

// ProvideEngine creates the confluence engine with the configured threshold.
func ProvideEngine(cfg *config.Config) *confluence.Engine {
	return confluence.NewEngine(
		confluence.WithThreshold(cfg.Engine.ConfluenceThreshold),
	)
}

// ProvideCandleCache creates the candle cache, Redis-backed when configured,
// otherwise in-process.
func ProvideCandleCache(cfg *config.Config) *icache.CandleCache {
	var store icache.BytesCache
	if cfg.Cache.Redis.Enabled {
		store = icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	} else {
		store = icache.NewTTLCache()
	}
	return icache.NewCandleCache(store, cfg.Cache.CandleTTL)
}

// ProvideAnalyzeUseCase creates the analysis use case.
func ProvideAnalyzeUseCase(
	market repository.MarketData,
	builder domsvc.SnapshotBuilder,
	engine *confluence.Engine,
	candles *icache.CandleCache,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.AnalyzeUseCase {
	return usecase.NewAnalyzeUseCase(market, builder, engine, candles, m, l)
}

// ProvideCandlesUseCase creates the raw candle use case.
func ProvideCandlesUseCase(market repository.MarketData) *usecase.CandlesUseCase {
	return usecase.NewCandlesUseCase(market)
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(l *applogger.Logger, analyze *usecase.AnalyzeUseCase, candles *usecase.CandlesUseCase) xhttp.Handler {
	return api.NewAnalysisEchoHandler(l, analyze, candles)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, h xhttp.Handler) *server.App {
	return server.New(cfg, l, h)
}
