package indicators

import (
	"math"
	"testing"
	"time"

	"BiasScope/internal/domain/models"
)

func testCandles(n int) []models.Candle {
	out := make([]models.Candle, n)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		// Gentle oscillation keeps every indicator well-defined.
		price := 100 + 5*math.Sin(float64(i)/7)
		out[i] = models.Candle{
			OpenTime:  base.Add(time.Duration(i) * 15 * time.Minute),
			CloseTime: base.Add(time.Duration(i+1) * 15 * time.Minute),
			Symbol:    "BTCUSDT",
			Open:      price,
			High:      price + 1,
			Low:       price - 1,
			Close:     price + 0.3,
			Volume:    1000 + 10*float64(i%7),
		}
	}
	return out
}

func TestBuildRejectsShortSeries(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(testCandles(MinCandles-1), "BTCUSDT", "15m"); err == nil {
		t.Fatal("expected error for short series")
	}
}

func TestBuildPopulatesRequiredFields(t *testing.T) {
	b := NewBuilder()
	snap, err := b.Build(testCandles(200), "BTCUSDT", "15m")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, name := range models.RequiredFields {
		v, ok := snap.Get(name)
		if !ok {
			t.Errorf("missing field %q", name)
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("field %q is not finite: %v", name, v)
		}
	}
}

func TestBuildSnapshotMirrorsLastCandle(t *testing.T) {
	candles := testCandles(100)
	last := candles[len(candles)-1]

	b := NewBuilder()
	snap, err := b.Build(candles, "BTCUSDT", "15m")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if snap.Symbol != "BTCUSDT" || snap.Interval != "15m" {
		t.Errorf("identity = %s/%s", snap.Symbol, snap.Interval)
	}
	if snap.Timestamp != last.CloseTime {
		t.Errorf("timestamp = %v, want %v", snap.Timestamp, last.CloseTime)
	}
	if snap.Close != last.Close || snap.Volume != last.Volume {
		t.Errorf("ohlcv mismatch")
	}

	wantBody := math.Abs(last.Close-last.Open) / last.Open * 100
	if got := snap.Value(models.FieldBodySize); math.Abs(got-wantBody) > 1e-9 {
		t.Errorf("body = %v, want %v", got, wantBody)
	}

	pivot := (last.High + last.Low + last.Close) / 3
	if got := snap.Value(models.FieldPivot); math.Abs(got-pivot) > 1e-9 {
		t.Errorf("pivot = %v, want %v", got, pivot)
	}
	if got := snap.Value(models.FieldR1); math.Abs(got-(2*pivot-last.Low)) > 1e-9 {
		t.Errorf("r1 = %v", got)
	}
	if got := snap.Value(models.FieldS1); math.Abs(got-(2*pivot-last.High)) > 1e-9 {
		t.Errorf("s1 = %v", got)
	}
}

func TestBuildWickPercentages(t *testing.T) {
	candles := testCandles(100)
	last := &candles[len(candles)-1]
	last.Open = 100
	last.Close = 102
	last.High = 105
	last.Low = 99

	b := NewBuilder()
	snap, err := b.Build(candles, "BTCUSDT", "15m")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := snap.Value(models.FieldUpperWick); math.Abs(got-3) > 1e-9 {
		t.Errorf("upper wick = %v, want 3", got)
	}
	if got := snap.Value(models.FieldLowerWick); math.Abs(got-1) > 1e-9 {
		t.Errorf("lower wick = %v, want 1", got)
	}
}
