package service

import (
	"BiasScope/internal/domain/models"
)

// Evaluator maps a snapshot to the directional signals its category detects.
// Implementations are pure and stateless: they read only the snapshot, never
// each other's output, so they may run in any order or in parallel.
type Evaluator interface {
	Category() string
	Evaluate(snap *models.Snapshot) models.ConfluenceSet
}

// SnapshotBuilder computes indicator values over a candle series and packs
// them into a snapshot for the latest completed period.
type SnapshotBuilder interface {
	Build(candles []models.Candle, symbol, interval string) (*models.Snapshot, error)
}
