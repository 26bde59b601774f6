package confluence

import (
	"fmt"

	"BiasScope/internal/domain/models"
)

// VolatilityEvaluator reads Bollinger position/width and ATR percent.
type VolatilityEvaluator struct {
	th Thresholds
}

func NewVolatilityEvaluator(th Thresholds) *VolatilityEvaluator {
	return &VolatilityEvaluator{th: th}
}

func (ev *VolatilityEvaluator) Category() string { return "volatility" }

func (ev *VolatilityEvaluator) Evaluate(snap *models.Snapshot) models.ConfluenceSet {
	var out models.ConfluenceSet

	// Band position is the raw (close-lower)/(upper-lower) ratio. It is not
	// clamped to [0,1]: price piercing a band pushes it outside the range and
	// still trips the corresponding zone rule.
	pos := snap.Value(models.FieldBBPosition)
	if pos < ev.th.BBLowerZone {
		out.Add(models.Signal{
			Indicator:   "Bollinger Bands",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Price near lower band (Position: %.2f)", pos),
			Implication: "Potential mean reversion setup. Watch for bounce off lower band or breakdown.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	} else if pos > ev.th.BBUpperZone {
		out.Add(models.Signal{
			Indicator:   "Bollinger Bands",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Price near upper band (Position: %.2f)", pos),
			Implication: "Potential mean reversion setup. Watch for rejection at upper band or breakout.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	width := snap.Value(models.FieldBBWidth)
	if width < ev.th.BBSqueezeWidth {
		out.Add(models.Signal{
			Indicator:   "Bollinger Band Width",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("Low volatility environment (Width: %.2f%%)", width),
			Implication: "Squeeze condition. Expect volatility expansion and potential breakout soon.",
			Strength:    models.Strong,
			Timeframe:   "Short to Medium-term",
		})
	} else if width > ev.th.BBExpansionWidth {
		out.Add(models.Signal{
			Indicator:   "Bollinger Band Width",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("High volatility environment (Width: %.2f%%)", width),
			Implication: "Volatility expansion phase. Expect potential reversion to mean.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	atrPct := snap.Value(models.FieldATRPercent)
	if atrPct > ev.th.ATRElevatedPct {
		out.Add(models.Signal{
			Indicator:   "Average True Range",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("High volatility (ATR: %.2f%%)", atrPct),
			Implication: "Elevated volatility. Use wider stops and smaller position sizes.",
			Strength:    models.Medium,
			Timeframe:   "All timeframes",
		})
	}

	return out
}
