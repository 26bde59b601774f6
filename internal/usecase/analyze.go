package usecase

import (
	"context"
	"fmt"
	"time"

	"BiasScope/internal/domain/models"
	domrepo "BiasScope/internal/domain/repository"
	domsvc "BiasScope/internal/domain/service"
	"BiasScope/internal/service/cache"
	"BiasScope/internal/services/confluence"
	applogger "BiasScope/pkg/logger"
)

// AnalyzeUseCase runs one full analysis: fetch candles, build the indicator
// snapshot, run the confluence engine, and assemble the report.
type AnalyzeUseCase struct {
	market  domrepo.MarketData
	builder domsvc.SnapshotBuilder
	engine  *confluence.Engine
	candles *cache.CandleCache
	metrics domrepo.Metrics
	logger  *applogger.Logger
	timeout time.Duration
}

func NewAnalyzeUseCase(
	market domrepo.MarketData,
	builder domsvc.SnapshotBuilder,
	engine *confluence.Engine,
	candles *cache.CandleCache,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *AnalyzeUseCase {
	return &AnalyzeUseCase{
		market:  market,
		builder: builder,
		engine:  engine,
		candles: candles,
		metrics: metrics,
		logger:  logger,
		timeout: 15 * time.Second,
	}
}

type AnalyzeParams struct {
	Symbol   string
	Interval domrepo.Interval
	Limit    int
}

func (uc *AnalyzeUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisReport, error) {
	if p.Symbol == "" {
		return nil, fmt.Errorf("symbol required")
	}
	if !domrepo.IsValidInterval(p.Interval) {
		p.Interval = domrepo.DefaultInterval()
	}
	if p.Limit <= 0 {
		p.Limit = 500
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()

	candles, err := uc.fetchCandles(ctx, p)
	if err != nil {
		uc.metrics.RecordError("fetch")
		return nil, fmt.Errorf("fetch candles: %w", err)
	}

	snap, err := uc.builder.Build(candles, p.Symbol, string(p.Interval))
	if err != nil {
		uc.metrics.RecordError("snapshot")
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	signals, bias, err := uc.engine.Evaluate(snap)
	if err != nil {
		uc.metrics.RecordError("evaluate")
		return nil, fmt.Errorf("evaluate snapshot: %w", err)
	}

	report := buildReport(p, candles, snap, signals, bias)

	uc.metrics.RecordAnalysis(p.Symbol, bias.Label)
	uc.metrics.RecordConfidence(p.Symbol, bias.Confidence)
	uc.metrics.RecordLatency("analyze", time.Since(start).Seconds())
	uc.logger.Info("analysis complete",
		applogger.String("symbol", p.Symbol),
		applogger.String("interval", string(p.Interval)),
		applogger.String("bias", bias.Label),
		applogger.Float64("confidence", bias.Confidence),
		applogger.Duration("took", time.Since(start)),
	)

	return report, nil
}

// fetchCandles serves from the candle cache when one is wired, falling back
// to the exchange on a miss. Cache write failures are logged, not fatal.
func (uc *AnalyzeUseCase) fetchCandles(ctx context.Context, p AnalyzeParams) ([]models.Candle, error) {
	if uc.candles != nil {
		if cached, ok := uc.candles.Get(p.Symbol, p.Interval, p.Limit); ok {
			return cached, nil
		}
	}

	fetched, err := uc.market.GetKlines(ctx, p.Symbol, p.Interval, p.Limit)
	if err != nil {
		return nil, err
	}
	if uc.candles != nil {
		if err := uc.candles.Set(p.Symbol, p.Interval, p.Limit, fetched); err != nil {
			uc.logger.Warn("candle cache write failed", applogger.Error(err))
		}
	}
	return fetched, nil
}

func buildReport(p AnalyzeParams, candles []models.Candle, snap *models.Snapshot, signals *models.ConfluenceSet, bias models.BiasResult) *models.AnalysisReport {
	rangeHigh, rangeLow := candles[0].High, candles[0].Low
	for _, c := range candles[1:] {
		if c.High > rangeHigh {
			rangeHigh = c.High
		}
		if c.Low < rangeLow {
			rangeLow = c.Low
		}
	}

	atr := snap.Value(models.FieldATR)
	atrPct := snap.Value(models.FieldATRPercent)

	stop := snap.Close - 1.5*atr
	if bias.Label == models.BiasBearish {
		stop = snap.Close + 1.5*atr
	}

	volLevel := "Low"
	switch {
	case atrPct > 3:
		volLevel = "High"
	case atrPct > 1.5:
		volLevel = "Medium"
	}

	return &models.AnalysisReport{
		Symbol:     p.Symbol,
		Interval:   string(p.Interval),
		AnalyzedAt: snap.Timestamp,
		Price:      snap.Close,
		RangeHigh:  rangeHigh,
		RangeLow:   rangeLow,
		Bias:       bias,
		Signals:    *signals,
		Levels: models.KeyLevels{
			Pivot:       snap.Value(models.FieldPivot),
			Resistance1: snap.Value(models.FieldR1),
			Support1:    snap.Value(models.FieldS1),
			BBUpper:     snap.Value(models.FieldBBUpper),
			BBLower:     snap.Value(models.FieldBBLower),
			EMA21:       snap.Value(models.FieldEMA21),
			EMA50:       snap.Value(models.FieldEMA50),
		},
		Risk: models.RiskProfile{
			ATR:             atr,
			ATRPercent:      atrPct,
			SuggestedStop:   stop,
			VolatilityLevel: volLevel,
		},
		Indicators: snap.Values,
	}
}
