package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"BiasScope/internal/domain/models"
)

func sampleReport() *models.AnalysisReport {
	return &models.AnalysisReport{
		Symbol:     "BTCUSDT",
		Interval:   "15m",
		AnalyzedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Price:      50000,
		RangeHigh:  51000,
		RangeLow:   49000,
		Bias: models.BiasResult{
			Label:        models.BiasBullish,
			Confidence:   75,
			BullishScore: 6,
			BearishScore: 2,
		},
		Signals: models.ConfluenceSet{
			Bullish: []models.Signal{{
				Indicator:   "RSI Oversold",
				Direction:   models.Bullish,
				Condition:   "Oversold at 28.5",
				Implication: "Potential bounce expected",
				Strength:    models.Medium,
				Timeframe:   "Short-term",
			}},
		},
		Levels: models.KeyLevels{
			Pivot: 50100, Resistance1: 50800, Support1: 49400,
			BBUpper: 50900, BBLower: 49100, EMA21: 49900, EMA50: 49600,
		},
		Risk: models.RiskProfile{
			ATR: 420, ATRPercent: 0.84, SuggestedStop: 49370, VolatilityLevel: "Low",
		},
		Indicators: map[string]float64{
			models.FieldRSI14:       62,
			models.FieldEMA9:        50050,
			models.FieldEMA21:       49900,
			models.FieldBBWidth:     3.6,
			models.FieldVolumeRatio: 1.1,
			models.FieldVolumeSMA:   1200,
		},
	}
}

func TestRenderContainsVerdictAndSignals(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, sampleReport())
	out := buf.String()

	for _, want := range []string{
		"BTCUSDT (15m)",
		"OVERALL MARKET BIAS: Bullish Bias (75.0% confidence)",
		"BULLISH CONFLUENCES (1 signals)",
		"Condition:   Oversold at 28.5",
		"Pivot Point:  $50100.0000",
		"Volatility Level: Low",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered output missing %q", want)
		}
	}
}

func TestRenderPlanBullishAboveGate(t *testing.T) {
	var buf bytes.Buffer
	RenderPlan(&buf, sampleReport())
	if !strings.Contains(buf.String(), "BULLISH SETUP IDENTIFIED") {
		t.Fatal("expected bullish setup for 75% confidence")
	}
}

func TestRenderPlanFallsBackToRangeAtGate(t *testing.T) {
	r := sampleReport()
	r.Bias.Confidence = 60 // gate is strictly greater than

	var buf bytes.Buffer
	RenderPlan(&buf, r)
	if !strings.Contains(buf.String(), "MIXED/RANGING MARKET") {
		t.Fatal("expected range plan at exactly 60%")
	}
}

func TestRenderPlanMixedBias(t *testing.T) {
	r := sampleReport()
	r.Bias.Label = models.BiasMixed
	r.Bias.Confidence = 90

	var buf bytes.Buffer
	RenderPlan(&buf, r)
	if !strings.Contains(buf.String(), "MIXED/RANGING MARKET") {
		t.Fatal("mixed bias never gets a directional plan")
	}
}

func TestInsights(t *testing.T) {
	lines := Insights(sampleReport())
	if len(lines) != 4 {
		t.Fatalf("expected 4 insight lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Bullish momentum (RSI: 62.0)") {
		t.Errorf("momentum line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Bullish (EMA 9 > EMA 21)") {
		t.Errorf("trend line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Volatility: Normal") {
		t.Errorf("volatility line: %q", lines[2])
	}
	if !strings.Contains(lines[3], "Volume: Average") {
		t.Errorf("volume line: %q", lines[3])
	}
}
