package confluence

import (
	"testing"

	"BiasScope/internal/domain/models"
)

func quietVolume() *models.Snapshot {
	return &models.Snapshot{
		Open: 100, High: 101, Low: 99, Close: 100.5, Volume: 1000,
		Values: map[string]float64{
			models.FieldVolumeRatio: 1.0,
			models.FieldCMF:         0,
		},
	}
}

func TestVolumeRatioZones(t *testing.T) {
	ev := NewVolumeEvaluator(DefaultThresholds())

	snap := quietVolume()
	snap.Values[models.FieldVolumeRatio] = 1.6
	out := ev.Evaluate(snap)
	if len(out.Neutral) != 1 || out.Neutral[0].Strength != models.Medium {
		t.Fatalf("1.6x volume fires neutral Medium, got %+v", out)
	}

	snap.Values[models.FieldVolumeRatio] = 2.5
	out = ev.Evaluate(snap)
	if len(out.Neutral) != 1 || out.Neutral[0].Strength != models.Strong {
		t.Fatalf("surge volume upgrades to Strong, got %+v", out)
	}

	snap.Values[models.FieldVolumeRatio] = 0.5
	out = ev.Evaluate(snap)
	if len(out.Neutral) != 1 || out.Neutral[0].Strength != models.Medium {
		t.Fatalf("0.5x volume fires neutral Medium, got %+v", out)
	}

	snap.Values[models.FieldVolumeRatio] = 1.0
	if out := ev.Evaluate(snap); out.Total() != 0 {
		t.Fatalf("average volume fires nothing, got %+v", out)
	}
}

func TestCMFZones(t *testing.T) {
	ev := NewVolumeEvaluator(DefaultThresholds())

	snap := quietVolume()
	snap.Values[models.FieldCMF] = 0.25
	out := ev.Evaluate(snap)
	if len(out.Bullish) != 1 || out.Bullish[0].Strength != models.Medium {
		t.Fatalf("CMF 0.25 fires bullish Medium, got %+v", out)
	}

	snap.Values[models.FieldCMF] = 0.35
	out = ev.Evaluate(snap)
	if len(out.Bullish) != 1 || out.Bullish[0].Strength != models.Strong {
		t.Fatalf("CMF 0.35 upgrades to Strong, got %+v", out)
	}

	snap.Values[models.FieldCMF] = -0.25
	out = ev.Evaluate(snap)
	if len(out.Bearish) != 1 || out.Bearish[0].Strength != models.Medium {
		t.Fatalf("CMF -0.25 fires bearish Medium, got %+v", out)
	}

	snap.Values[models.FieldCMF] = -0.35
	out = ev.Evaluate(snap)
	if len(out.Bearish) != 1 || out.Bearish[0].Strength != models.Strong {
		t.Fatalf("CMF -0.35 upgrades to Strong, got %+v", out)
	}

	snap.Values[models.FieldCMF] = 0.2
	if out := ev.Evaluate(snap); out.Total() != 0 {
		t.Fatalf("CMF exactly 0.2 must not fire, got %+v", out)
	}
}
