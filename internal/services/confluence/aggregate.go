package confluence

import "BiasScope/internal/domain/models"

func scoreOf(signals []models.Signal) int {
	total := 0
	for _, s := range signals {
		total += s.Strength.Weight()
	}
	return total
}

// Aggregate scores a merged confluence set and derives the bias verdict.
//
// A direction wins only when its raw weighted score is strictly larger than
// the opposite side's AND reaches the confluence threshold; ties and
// below-threshold leads both land in Mixed/Neutral. The threshold compares
// against the raw score, never a normalized one.
func Aggregate(set *models.ConfluenceSet, threshold int) models.BiasResult {
	bullish := scoreOf(set.Bullish)
	bearish := scoreOf(set.Bearish)
	neutral := scoreOf(set.Neutral)
	total := bullish + bearish + neutral

	res := models.BiasResult{
		BullishScore: bullish,
		BearishScore: bearish,
		NeutralScore: neutral,
	}

	if total == 0 {
		res.Label = models.BiasNoSignal
		res.Confidence = 0
		return res
	}

	switch {
	case bullish > bearish && bullish >= threshold:
		res.Label = models.BiasBullish
		res.Confidence = float64(bullish) / float64(total) * 100
	case bearish > bullish && bearish >= threshold:
		res.Label = models.BiasBearish
		res.Confidence = float64(bearish) / float64(total) * 100
	default:
		res.Label = models.BiasMixed
		res.Confidence = float64(max(bullish, bearish)) / float64(total) * 100
	}
	return res
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
