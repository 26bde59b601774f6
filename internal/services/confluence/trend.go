package confluence

import (
	"fmt"

	"BiasScope/internal/domain/models"
)

// TrendEvaluator reads EMA structure, MACD, and ADX/DI trend strength.
type TrendEvaluator struct {
	th Thresholds
}

func NewTrendEvaluator(th Thresholds) *TrendEvaluator {
	return &TrendEvaluator{th: th}
}

func (ev *TrendEvaluator) Category() string { return "trend" }

func (ev *TrendEvaluator) Evaluate(snap *models.Snapshot) models.ConfluenceSet {
	var out models.ConfluenceSet

	ema9 := snap.Value(models.FieldEMA9)
	ema21 := snap.Value(models.FieldEMA21)
	ema50 := snap.Value(models.FieldEMA50)

	// Full stack alignment only; mixed orderings produce no signal.
	if ema9 > ema21 && ema21 > ema50 {
		out.Add(models.Signal{
			Indicator:   "EMA Alignment",
			Direction:   models.Bullish,
			Condition:   "EMA 9 > EMA 21 > EMA 50",
			Implication: "Strong bullish trend structure. Expect continuation with pullbacks to EMAs as support.",
			Strength:    models.Strong,
			Timeframe:   "Medium-term",
		})
	} else if ema9 < ema21 && ema21 < ema50 {
		out.Add(models.Signal{
			Indicator:   "EMA Alignment",
			Direction:   models.Bearish,
			Condition:   "EMA 9 < EMA 21 < EMA 50",
			Implication: "Strong bearish trend structure. Expect continuation with rallies to EMAs as resistance.",
			Strength:    models.Strong,
			Timeframe:   "Medium-term",
		})
	}

	deviation := (snap.Close/ema21 - 1) * 100
	if snap.Close > ema21 {
		out.Add(models.Signal{
			Indicator:   "Price vs EMA 21",
			Direction:   models.Bullish,
			Condition:   fmt.Sprintf("Price %+.2f%% above EMA 21", deviation),
			Implication: "Bullish bias maintained. EMA 21 likely to act as dynamic support.",
			Strength:    models.Medium,
			Timeframe:   "Short to Medium-term",
		})
	} else {
		out.Add(models.Signal{
			Indicator:   "Price vs EMA 21",
			Direction:   models.Bearish,
			Condition:   fmt.Sprintf("Price %+.2f%% below EMA 21", deviation),
			Implication: "Bearish bias maintained. EMA 21 likely to act as dynamic resistance.",
			Strength:    models.Medium,
			Timeframe:   "Short to Medium-term",
		})
	}

	macd := snap.Value(models.FieldMACD)
	macdSignal := snap.Value(models.FieldMACDSignal)
	histogram := snap.Value(models.FieldMACDHistogram)
	if macd > macdSignal && histogram > 0 {
		out.Add(models.Signal{
			Indicator:   "MACD",
			Direction:   models.Bullish,
			Condition:   "MACD above signal line with positive histogram",
			Implication: "Bullish momentum building. Watch for histogram expansion for stronger moves.",
			Strength:    models.Strong,
			Timeframe:   "Medium-term",
		})
	} else if macd < macdSignal && histogram < 0 {
		out.Add(models.Signal{
			Indicator:   "MACD",
			Direction:   models.Bearish,
			Condition:   "MACD below signal line with negative histogram",
			Implication: "Bearish momentum building. Watch for histogram expansion for stronger moves.",
			Strength:    models.Strong,
			Timeframe:   "Medium-term",
		})
	}

	// ADX in [20, 25] fires nothing: strong-trend needs > 25, ranging needs
	// < 20. The gap is intentional.
	adx := snap.Value(models.FieldADX)
	if adx > ev.th.ADXTrending {
		direction := models.Bullish
		word := "bullish"
		if snap.Value(models.FieldDIPlus) <= snap.Value(models.FieldDIMinus) {
			direction = models.Bearish
			word = "bearish"
		}
		strength := models.Medium
		if adx > ev.th.ADXStrong {
			strength = models.Strong
		}
		out.Add(models.Signal{
			Indicator:   "ADX Trend Strength",
			Direction:   direction,
			Condition:   fmt.Sprintf("Strong trending market (ADX: %.1f)", adx),
			Implication: fmt.Sprintf("Strong %s trend in place. Expect trend continuation with minor pullbacks.", word),
			Strength:    strength,
			Timeframe:   "Medium to Long-term",
		})
	} else if adx < ev.th.ADXRanging {
		out.Add(models.Signal{
			Indicator:   "ADX Trend Strength",
			Direction:   models.Neutral,
			Condition:   fmt.Sprintf("Weak trending market (ADX: %.1f)", adx),
			Implication: "Market in consolidation/ranging phase. Look for breakout setups.",
			Strength:    models.Medium,
			Timeframe:   "All timeframes",
		})
	}

	return out
}
