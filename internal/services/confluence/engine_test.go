package confluence

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"BiasScope/internal/domain/models"
)

// bullishSnapshot builds a complete snapshot where every firing rule argues
// bullish and nothing lands in the bearish or neutral buckets.
func bullishSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Symbol: "BTCUSDT", Interval: "15m",
		Open: 100, High: 104, Low: 99.5, Close: 102.5, Volume: 1500,
		Values: map[string]float64{
			models.FieldRSI14:     25, // oversold, bullish
			models.FieldStochK:    15, // both oversold, %K > %D: Strong
			models.FieldStochD:    10,
			models.FieldWilliamsR: -85, // oversold, bullish

			models.FieldEMA9:  110, // aligned stack, bullish
			models.FieldEMA21: 100, // price above: bullish
			models.FieldEMA50: 95,

			models.FieldMACD:          2, // above signal, positive histogram
			models.FieldMACDSignal:    1,
			models.FieldMACDHistogram: 1,

			models.FieldADX:     30, // trending, DI+ leads
			models.FieldDIPlus:  30,
			models.FieldDIMinus: 10,

			models.FieldBBWidth:    5,    // quiet
			models.FieldBBPosition: 0.05, // lower zone, bullish
			models.FieldATRPercent: 2,    // quiet

			models.FieldVolumeRatio: 1.0,  // quiet
			models.FieldCMF:         0.25, // buying pressure, bullish

			models.FieldBodySize:  2.5, // large body on up candle, bullish
			models.FieldUpperWick: 0.5,
			models.FieldLowerWick: 0.5,
		},
	}
}

func TestEvaluateAllBullishScenario(t *testing.T) {
	engine := NewEngine()

	set, bias, err := engine.Evaluate(bullishSnapshot())
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(set.Bearish) != 0 || len(set.Neutral) != 0 {
		t.Fatalf("expected only bullish signals, got %d bearish, %d neutral", len(set.Bearish), len(set.Neutral))
	}
	if bias.Label != models.BiasBullish {
		t.Fatalf("label = %q", bias.Label)
	}
	if bias.Confidence != 100 {
		t.Fatalf("confidence = %v, want 100", bias.Confidence)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	engine := NewEngine()
	snap := bullishSnapshot()

	first, firstBias, err := engine.Evaluate(snap)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	for i := 0; i < 20; i++ {
		set, bias, err := engine.Evaluate(snap)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(set, first) {
			t.Fatalf("run %d produced different signal order", i)
		}
		if bias != firstBias {
			t.Fatalf("run %d produced different verdict", i)
		}
	}
}

func TestValidateMissingField(t *testing.T) {
	engine := NewEngine()
	snap := bullishSnapshot()
	delete(snap.Values, models.FieldCMF)

	_, _, err := engine.Evaluate(snap)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingFieldError, got %v", err)
	}
	if missing.Field != models.FieldCMF {
		t.Errorf("field = %q", missing.Field)
	}
}

func TestValidateNonFiniteIndicator(t *testing.T) {
	engine := NewEngine()
	snap := bullishSnapshot()
	snap.Values[models.FieldRSI14] = math.NaN()

	_, _, err := engine.Evaluate(snap)
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("want InvalidValueError, got %v", err)
	}
	if invalid.Field != models.FieldRSI14 {
		t.Errorf("field = %q", invalid.Field)
	}
}

func TestValidateRejectsBadPrices(t *testing.T) {
	engine := NewEngine()

	snap := bullishSnapshot()
	snap.Close = 0
	if _, _, err := engine.Evaluate(snap); err == nil {
		t.Fatal("zero close must fail validation")
	}

	snap = bullishSnapshot()
	snap.High = math.Inf(1)
	if _, _, err := engine.Evaluate(snap); err == nil {
		t.Fatal("infinite high must fail validation")
	}

	snap = bullishSnapshot()
	snap.Volume = -1
	if _, _, err := engine.Evaluate(snap); err == nil {
		t.Fatal("negative volume must fail validation")
	}
}

func TestValidationRunsBeforeEvaluators(t *testing.T) {
	engine := NewEngine()
	snap := bullishSnapshot()
	delete(snap.Values, models.FieldADX)

	set, bias, err := engine.Evaluate(snap)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if set != nil {
		t.Error("no partial signal set on validation failure")
	}
	if bias.Label != "" {
		t.Errorf("no verdict on validation failure, got %q", bias.Label)
	}
}

func TestWithThresholdOption(t *testing.T) {
	engine := NewEngine(WithThreshold(5))
	if engine.Threshold() != 5 {
		t.Fatalf("threshold = %d", engine.Threshold())
	}
}
