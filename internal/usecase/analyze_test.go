package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"BiasScope/internal/domain/models"
	domrepo "BiasScope/internal/domain/repository"
	"BiasScope/internal/service/cache"
	"BiasScope/internal/services/confluence"
	"BiasScope/internal/services/indicators"
	applogger "BiasScope/pkg/logger"
)

type fakeMarket struct {
	candles []models.Candle
	err     error
	calls   int
}

func (f *fakeMarket) GetKlines(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, error) {
	f.calls++
	return f.candles, f.err
}

type fakeMetrics struct {
	analyses int
	errs     []string
}

func (f *fakeMetrics) RecordAnalysis(symbol, biasLabel string)      { f.analyses++ }
func (f *fakeMetrics) RecordError(kind string)                      { f.errs = append(f.errs, kind) }
func (f *fakeMetrics) RecordConfidence(symbol string, conf float64) {}
func (f *fakeMetrics) RecordLatency(op string, seconds float64)     {}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func marketCandles(n int) []models.Candle {
	out := make([]models.Candle, n)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		price := 100 + 5*math.Sin(float64(i)/7)
		out[i] = models.Candle{
			OpenTime:  base.Add(time.Duration(i) * 15 * time.Minute),
			CloseTime: base.Add(time.Duration(i+1) * 15 * time.Minute),
			Symbol:    "BTCUSDT",
			Open:      price,
			High:      price + 1,
			Low:       price - 1,
			Close:     price + 0.3,
			Volume:    1000,
		}
	}
	return out
}

func newAnalyzeUC(market *fakeMarket, m *fakeMetrics, cc *cache.CandleCache, t *testing.T) *AnalyzeUseCase {
	return NewAnalyzeUseCase(
		market,
		indicators.NewBuilder(),
		confluence.NewEngine(),
		cc,
		m,
		testLogger(t),
	)
}

func TestAnalyzeProducesReport(t *testing.T) {
	market := &fakeMarket{candles: marketCandles(200)}
	m := &fakeMetrics{}
	uc := newAnalyzeUC(market, m, nil, t)

	r, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "BTCUSDT", Interval: domrepo.IV15m, Limit: 200})
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if r.Symbol != "BTCUSDT" || r.Interval != "15m" {
		t.Errorf("identity = %s/%s", r.Symbol, r.Interval)
	}
	if r.Bias.Label == "" {
		t.Error("missing bias verdict")
	}
	if r.RangeHigh <= r.RangeLow {
		t.Errorf("range %v..%v", r.RangeLow, r.RangeHigh)
	}
	if len(r.Indicators) == 0 {
		t.Error("missing indicator values")
	}
	if m.analyses != 1 {
		t.Errorf("analyses recorded = %d", m.analyses)
	}
}

func TestAnalyzeRequiresSymbol(t *testing.T) {
	uc := newAnalyzeUC(&fakeMarket{}, &fakeMetrics{}, nil, t)
	if _, err := uc.Analyze(context.Background(), AnalyzeParams{}); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}

func TestAnalyzeFetchErrorIsRecorded(t *testing.T) {
	m := &fakeMetrics{}
	uc := newAnalyzeUC(&fakeMarket{err: errors.New("boom")}, m, nil, t)

	_, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "BTCUSDT"})
	if err == nil {
		t.Fatal("expected fetch error")
	}
	if len(m.errs) != 1 || m.errs[0] != "fetch" {
		t.Errorf("errors recorded = %v", m.errs)
	}
}

func TestAnalyzeShortSeriesFails(t *testing.T) {
	m := &fakeMetrics{}
	uc := newAnalyzeUC(&fakeMarket{candles: marketCandles(10)}, m, nil, t)

	_, err := uc.Analyze(context.Background(), AnalyzeParams{Symbol: "BTCUSDT"})
	if err == nil {
		t.Fatal("expected snapshot error")
	}
	if len(m.errs) != 1 || m.errs[0] != "snapshot" {
		t.Errorf("errors recorded = %v", m.errs)
	}
}

func TestAnalyzeUsesCandleCache(t *testing.T) {
	market := &fakeMarket{candles: marketCandles(200)}
	cc := cache.NewCandleCache(cache.NewTTLCache(), time.Minute)
	uc := newAnalyzeUC(market, &fakeMetrics{}, cc, t)

	p := AnalyzeParams{Symbol: "BTCUSDT", Interval: domrepo.IV15m, Limit: 200}
	if _, err := uc.Analyze(context.Background(), p); err != nil {
		t.Fatalf("first analyze: %v", err)
	}
	if _, err := uc.Analyze(context.Background(), p); err != nil {
		t.Fatalf("second analyze: %v", err)
	}
	if market.calls != 1 {
		t.Fatalf("market calls = %d, want 1 (second run served from cache)", market.calls)
	}
}

func TestGetCandlesClampsLimit(t *testing.T) {
	market := &fakeMarket{candles: marketCandles(5)}
	uc := NewCandlesUseCase(market)

	res, err := uc.GetCandles(context.Background(), GetCandlesParams{Symbol: "BTCUSDT", Limit: 5})
	if err != nil {
		t.Fatalf("get candles: %v", err)
	}
	if res.Count != 5 {
		t.Errorf("count = %d", res.Count)
	}

	if _, err := uc.GetCandles(context.Background(), GetCandlesParams{}); err == nil {
		t.Fatal("expected error for empty symbol")
	}
}
