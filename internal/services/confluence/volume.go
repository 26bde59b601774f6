package confluence

import (
	"fmt"

	"BiasScope/internal/domain/models"
)

// VolumeEvaluator reads participation (volume vs 20-period average) and
// Chaikin Money Flow.
type VolumeEvaluator struct {
	th Thresholds
}

func NewVolumeEvaluator(th Thresholds) *VolumeEvaluator {
	return &VolumeEvaluator{th: th}
}

func (ev *VolumeEvaluator) Category() string { return "volume" }

func (ev *VolumeEvaluator) Evaluate(snap *models.Snapshot) models.ConfluenceSet {
	var out models.ConfluenceSet

	ratio := snap.Value(models.FieldVolumeRatio)
	if ratio > ev.th.VolumeHighRatio {
		strength := models.Medium
		if ratio > ev.th.VolumeSurgeRatio {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Volume",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("Above average volume (%.1fx normal)", ratio),
			Implication: "Strong participation. Moves likely to be more sustainable.",
			Strength:    strength,
			Timeframe:   "Short-term",
		})
	} else if ratio < ev.th.VolumeLowRatio {
		out.Add(models.Signal{
			Indicator:   "Volume",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("Below average volume (%.1fx normal)", ratio),
			Implication: "Low participation. Moves may lack conviction and sustainability.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	cmf := snap.Value(models.FieldCMF)
	if cmf > ev.th.CMFBullish {
		strength := models.Medium
		if cmf > ev.th.CMFStrongBullish {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Chaikin Money Flow",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Strong buying pressure (CMF: %.2f)", cmf),
			Implication: "Money flowing into the asset. Supports bullish bias.",
			Strength:    strength,
			Timeframe:   "Medium-term",
		})
	} else if cmf < ev.th.CMFBearish {
		strength := models.Medium
		if cmf < ev.th.CMFStrongBearish {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Chaikin Money Flow",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Strong selling pressure (CMF: %.2f)", cmf),
			Implication: "Money flowing out of the asset. Supports bearish bias.",
			Strength:    strength,
			Timeframe:   "Medium-term",
		})
	}

	return out
}
