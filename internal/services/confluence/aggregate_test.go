package confluence

import (
	"testing"

	"BiasScope/internal/domain/models"
)

func sig(dir models.Direction, strength models.Strength) models.Signal {
	return models.Signal{Indicator: "test", Direction: dir, Strength: strength}
}

func TestAggregateEmptySet(t *testing.T) {
	res := Aggregate(&models.ConfluenceSet{}, DefaultConfluenceThreshold)
	if res.Label != models.BiasNoSignal {
		t.Fatalf("label = %q", res.Label)
	}
	if res.Confidence != 0 {
		t.Fatalf("confidence = %v", res.Confidence)
	}
}

func TestAggregateTieIsMixed(t *testing.T) {
	set := &models.ConfluenceSet{}
	set.Add(sig(models.Bullish, models.Strong)) // 3
	set.Add(sig(models.Bearish, models.Strong)) // 3

	res := Aggregate(set, DefaultConfluenceThreshold)
	if res.Label != models.BiasMixed {
		t.Fatalf("tied scores at threshold must be Mixed, got %q", res.Label)
	}
	if res.Confidence != 50 {
		t.Fatalf("confidence = %v, want 50", res.Confidence)
	}
}

func TestAggregateThresholdGate(t *testing.T) {
	// Bullish leads 2-0 but stays below the threshold of 3.
	set := &models.ConfluenceSet{}
	set.Add(sig(models.Bullish, models.Medium)) // 2
	set.Add(sig(models.Neutral, models.Medium)) // 2

	res := Aggregate(set, DefaultConfluenceThreshold)
	if res.Label != models.BiasMixed {
		t.Fatalf("below-threshold lead must be Mixed, got %q", res.Label)
	}
	if res.Confidence != 50 {
		t.Fatalf("confidence = %v, want 50", res.Confidence)
	}

	// The same set wins once the threshold drops to 2.
	res = Aggregate(set, 2)
	if res.Label != models.BiasBullish {
		t.Fatalf("threshold 2 lets the lead win, got %q", res.Label)
	}
}

func TestAggregateThresholdUsesRawScore(t *testing.T) {
	// Raw bullish score 3 out of a big total: low percentage, still a win.
	set := &models.ConfluenceSet{}
	set.Add(sig(models.Bullish, models.Strong)) // 3
	set.Add(sig(models.Neutral, models.Strong)) // 3
	set.Add(sig(models.Neutral, models.Strong)) // 3

	res := Aggregate(set, DefaultConfluenceThreshold)
	if res.Label != models.BiasBullish {
		t.Fatalf("raw score meets threshold, got %q", res.Label)
	}
	if res.Confidence < 33.3 || res.Confidence > 33.4 {
		t.Fatalf("confidence = %v, want ~33.3", res.Confidence)
	}
}

func TestAggregateBearishWin(t *testing.T) {
	set := &models.ConfluenceSet{}
	set.Add(sig(models.Bearish, models.Strong)) // 3
	set.Add(sig(models.Bearish, models.Medium)) // 2
	set.Add(sig(models.Bullish, models.Low))    // 1

	res := Aggregate(set, DefaultConfluenceThreshold)
	if res.Label != models.BiasBearish {
		t.Fatalf("label = %q", res.Label)
	}
	want := 5.0 / 6.0 * 100
	if res.Confidence != want {
		t.Fatalf("confidence = %v, want %v", res.Confidence, want)
	}
	if res.BullishScore != 1 || res.BearishScore != 5 || res.NeutralScore != 0 {
		t.Fatalf("scores = %d/%d/%d", res.BullishScore, res.BearishScore, res.NeutralScore)
	}
}

func TestUnknownStrengthWeighsOne(t *testing.T) {
	set := &models.ConfluenceSet{}
	set.Add(models.Signal{Direction: models.Bullish, Strength: "Extreme"})

	res := Aggregate(set, 1)
	if res.BullishScore != 1 {
		t.Fatalf("unknown strength weighs 1, got %d", res.BullishScore)
	}
}
