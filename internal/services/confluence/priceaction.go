package confluence

import (
	"fmt"

	"BiasScope/internal/domain/models"
)

// PriceActionEvaluator reads the latest candle's body and wick geometry.
// Body and wick sizes arrive as percentages of the open.
type PriceActionEvaluator struct {
	th Thresholds
}

func NewPriceActionEvaluator(th Thresholds) *PriceActionEvaluator {
	return &PriceActionEvaluator{th: th}
}

func (ev *PriceActionEvaluator) Category() string { return "price_action" }

func (ev *PriceActionEvaluator) Evaluate(snap *models.Snapshot) models.ConfluenceSet {
	var out models.ConfluenceSet

	body := snap.Value(models.FieldBodySize)
	bullishCandle := snap.Close > snap.Open

	if body > ev.th.LargeBodyPct {
		direction := models.Bearish
		word := "bearish"
		if bullishCandle {
			direction = models.Bullish
			word = "bullish"
		}
		strength := models.Medium
		if body > ev.th.StrongBodyPct {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Price Action",
			Direction:   direction,
			Condition:   fmt.Sprintf("Large %s candle (Body: %.2f%%)", word, body),
			Implication: fmt.Sprintf("Strong %s conviction. Expect follow-through in next few candles.", word),
			Strength:    strength,
			Timeframe:   "Short-term",
		})
	}

	// A long upper wick on an up candle marks rejection at the highs; the
	// mirror pattern on a down candle marks support at the lows.
	upperWick := snap.Value(models.FieldUpperWick)
	if upperWick > body*ev.th.WickBodyMultiple && bullishCandle {
		out.Add(models.Signal{
			Indicator:   "Price Action - Wicks",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Long upper wick on bullish candle (Wick: %.2f%%)", upperWick),
			Implication: "Rejection at highs despite bullish close. Potential resistance area.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	lowerWick := snap.Value(models.FieldLowerWick)
	if lowerWick > body*ev.th.WickBodyMultiple && snap.Close < snap.Open {
		out.Add(models.Signal{
			Indicator:   "Price Action - Wicks",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Long lower wick on bearish candle (Wick: %.2f%%)", lowerWick),
			Implication: "Support found at lows despite bearish close. Potential support area.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	return out
}
