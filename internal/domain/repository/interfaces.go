package repository

import (
	"context"

	"BiasScope/internal/domain/models"
)

// MarketData provides read-only access to historical candles from an
// exchange. Implementations own pagination, timestamp normalization, and
// transport concerns.
type MarketData interface {
	GetKlines(ctx context.Context, symbol string, interval Interval, limit int) ([]models.Candle, error)
}

// Metrics records operational measurements for the analysis pipeline.
type Metrics interface {
	RecordAnalysis(symbol, biasLabel string)
	RecordError(kind string)
	RecordConfidence(symbol string, confidence float64)
	RecordLatency(op string, seconds float64)
}
