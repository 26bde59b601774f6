// Package report renders an analysis into human-readable console text:
// the signal breakdown, key levels, a trading plan, and quick insights.
package report

import (
	"fmt"
	"io"
	"strings"

	"BiasScope/internal/domain/models"
)

const lineWidth = 80

func rule(w io.Writer, ch string, n int) {
	fmt.Fprintln(w, strings.Repeat(ch, n))
}

// Render writes the full analysis report to w.
func Render(w io.Writer, r *models.AnalysisReport) {
	rule(w, "=", lineWidth)
	fmt.Fprintf(w, "TECHNICAL ANALYSIS - %s (%s)\n", r.Symbol, r.Interval)
	rule(w, "=", lineWidth)
	fmt.Fprintf(w, "Analysis Time: %s\n", r.AnalyzedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Current Price: $%.4f\n", r.Price)
	fmt.Fprintf(w, "Range: $%.4f - $%.4f\n", r.RangeLow, r.RangeHigh)

	fmt.Fprintf(w, "\nOVERALL MARKET BIAS: %s (%.1f%% confidence)\n", r.Bias.Label, r.Bias.Confidence)

	renderGroup(w, "BULLISH CONFLUENCES", r.Signals.Bullish)
	renderGroup(w, "BEARISH CONFLUENCES", r.Signals.Bearish)
	renderGroup(w, "NEUTRAL/MIXED SIGNALS", r.Signals.Neutral)

	fmt.Fprintf(w, "\nKEY LEVELS:\n")
	fmt.Fprintf(w, "   Pivot Point:  $%.4f\n", r.Levels.Pivot)
	fmt.Fprintf(w, "   Resistance 1: $%.4f\n", r.Levels.Resistance1)
	fmt.Fprintf(w, "   Support 1:    $%.4f\n", r.Levels.Support1)
	fmt.Fprintf(w, "   BB Upper:     $%.4f\n", r.Levels.BBUpper)
	fmt.Fprintf(w, "   BB Lower:     $%.4f\n", r.Levels.BBLower)
	fmt.Fprintf(w, "   EMA 21:       $%.4f\n", r.Levels.EMA21)
	fmt.Fprintf(w, "   EMA 50:       $%.4f\n", r.Levels.EMA50)

	fmt.Fprintf(w, "\nRISK MANAGEMENT:\n")
	fmt.Fprintf(w, "   ATR: $%.4f (%.2f%%)\n", r.Risk.ATR, r.Risk.ATRPercent)
	fmt.Fprintf(w, "   Suggested Stop Distance: $%.4f\n", r.Risk.ATR*1.5)
	fmt.Fprintf(w, "   Volatility Level: %s\n", r.Risk.VolatilityLevel)

	fmt.Fprintln(w)
	rule(w, "=", lineWidth)
	fmt.Fprintln(w, "This analysis is for educational purposes. Always use proper risk management.")
	rule(w, "=", lineWidth)
}

func renderGroup(w io.Writer, title string, signals []models.Signal) {
	if len(signals) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s (%d signals):\n", title, len(signals))
	rule(w, "-", 60)
	for i, s := range signals {
		fmt.Fprintf(w, "%d. %s [%s] - %s\n", i+1, s.Indicator, s.Strength, s.Timeframe)
		fmt.Fprintf(w, "   Condition:   %s\n", s.Condition)
		fmt.Fprintf(w, "   Implication: %s\n", s.Implication)
		fmt.Fprintln(w)
	}
}
