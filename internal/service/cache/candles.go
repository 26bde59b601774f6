package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"BiasScope/internal/domain/models"
	drepo "BiasScope/internal/domain/repository"
)

// CandleCache stores candle batches keyed by symbol, interval and limit on
// top of any BytesCache.
type CandleCache struct {
	store BytesCache
	ttl   time.Duration
}

func NewCandleCache(store BytesCache, ttl time.Duration) *CandleCache {
	return &CandleCache{store: store, ttl: ttl}
}

func key(symbol string, interval drepo.Interval, limit int) string {
	return fmt.Sprintf("candles:%s:%s:%d", symbol, interval, limit)
}

// Get returns a cached batch, or ok=false on miss or decode failure.
func (c *CandleCache) Get(symbol string, interval drepo.Interval, limit int) ([]models.Candle, bool) {
	b, ok, err := c.store.GetBytes(key(symbol, interval, limit))
	if err != nil || !ok {
		return nil, false
	}
	var candles []models.Candle
	if err := json.Unmarshal(b, &candles); err != nil {
		return nil, false
	}
	return candles, true
}

// Set stores a batch. Encoding or store errors are returned so callers can
// log them; a failed Set never blocks the analysis path.
func (c *CandleCache) Set(symbol string, interval drepo.Interval, limit int, candles []models.Candle) error {
	b, err := json.Marshal(candles)
	if err != nil {
		return fmt.Errorf("encode candles: %w", err)
	}
	return c.store.SetBytes(key(symbol, interval, limit), b, c.ttl)
}
