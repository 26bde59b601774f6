package cache

import (
	"testing"
	"time"

	"BiasScope/internal/domain/models"
	drepo "BiasScope/internal/domain/repository"
)

func TestCandleCacheRoundTrip(t *testing.T) {
	c := NewCandleCache(NewTTLCache(), time.Minute)

	if _, ok := c.Get("BTCUSDT", drepo.IV15m, 500); ok {
		t.Fatal("expected miss on empty cache")
	}

	in := []models.Candle{{
		Symbol: "BTCUSDT",
		Open:   100, High: 110, Low: 95, Close: 105, Volume: 12,
	}}
	if err := c.Set("BTCUSDT", drepo.IV15m, 500, in); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, ok := c.Get("BTCUSDT", drepo.IV15m, 500)
	if !ok {
		t.Fatal("expected hit")
	}
	if len(out) != 1 || out[0].Close != 105 {
		t.Fatalf("got %+v", out)
	}

	// Different limit is a different key.
	if _, ok := c.Get("BTCUSDT", drepo.IV15m, 200); ok {
		t.Fatal("limit should be part of the key")
	}
}

func TestTTLCacheExpiry(t *testing.T) {
	c := NewTTLCache()
	if err := c.SetBytes("k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Negative TTL stores a zero expiry, meaning no expiry at all.
	if _, ok, _ := c.GetBytes("k"); !ok {
		t.Fatal("zero expiry entries never expire")
	}

	if err := c.SetBytes("gone", []byte("v"), time.Nanosecond); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, ok, _ := c.GetBytes("gone"); ok {
		t.Fatal("expected expiry")
	}
}
