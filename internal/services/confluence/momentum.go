package confluence

import (
	"fmt"

	"BiasScope/internal/domain/models"
)

// MomentumEvaluator reads the oscillator block: RSI, stochastic, Williams %R.
type MomentumEvaluator struct {
	th Thresholds
}

func NewMomentumEvaluator(th Thresholds) *MomentumEvaluator {
	return &MomentumEvaluator{th: th}
}

func (ev *MomentumEvaluator) Category() string { return "momentum" }

func (ev *MomentumEvaluator) Evaluate(snap *models.Snapshot) models.ConfluenceSet {
	var out models.ConfluenceSet

	// RSI branches are mutually exclusive; the neutral band is only reached
	// when neither extreme fires.
	rsi := snap.Value(models.FieldRSI14)
	switch {
	case rsi < ev.th.RSIOversold:
		out.Add(models.Signal{
			Indicator:   "RSI (14)",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Oversold at %.1f", rsi),
			Implication: "Potential bounce or reversal setup. Watch for bullish divergence or break above 30.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	case rsi > ev.th.RSIOverbought:
		out.Add(models.Signal{
			Indicator:   "RSI (14)",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Overbought at %.1f", rsi),
			Implication: "Potential pullback or distribution. Watch for bearish divergence or break below 70.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	case rsi >= ev.th.RSINeutralLo && rsi <= ev.th.RSINeutralHi:
		out.Add(models.Signal{
			Indicator:   "RSI (14)",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("Neutral at %.1f", rsi),
			Implication: "Balanced momentum. Look for directional break above 55 or below 45.",
			Strength:    models.Low,
			Timeframe:   "Short-term",
		})
	}

	k := snap.Value(models.FieldStochK)
	d := snap.Value(models.FieldStochD)
	if k < ev.th.StochOversold && d < ev.th.StochOversold {
		strength := models.Medium
		if k > d {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Stochastic",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Both %%K (%.1f) and %%D (%.1f) oversold", k, d),
			Implication: "Strong oversold condition. Potential reversal when %K crosses above %D.",
			Strength:    strength,
			Timeframe:   "Short-term",
		})
	} else if k > ev.th.StochOverbought && d > ev.th.StochOverbought {
		strength := models.Medium
		if k < d {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "Stochastic",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Both %%K (%.1f) and %%D (%.1f) overbought", k, d),
			Implication: "Strong overbought condition. Potential reversal when %K crosses below %D.",
			Strength:    strength,
			Timeframe:   "Short-term",
		})
	}

	wr := snap.Value(models.FieldWilliamsR)
	if wr < ev.th.WilliamsOversold {
		out.Add(models.Signal{
			Indicator:   "Williams %R",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Oversold at %.1f", wr),
			Implication: "Potential buying opportunity. Watch for move above -80 for confirmation.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	} else if wr > ev.th.WilliamsOverbought {
		out.Add(models.Signal{
			Indicator:   "Williams %R",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Overbought at %.1f", wr),
			Implication: "Potential selling pressure. Watch for move below -20 for confirmation.",
			Strength:    models.Medium,
			Timeframe:   "Short-term",
		})
	}

	return out
}
