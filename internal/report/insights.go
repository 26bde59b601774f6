package report

import (
	"fmt"
	"io"

	"BiasScope/internal/domain/models"
)

// Insights derives one-line market observations from the raw indicator
// values carried on the report.
func Insights(r *models.AnalysisReport) []string {
	ind := r.Indicators
	out := make([]string, 0, 4)

	rsi := ind[models.FieldRSI14]
	if rsi > 50 {
		out = append(out, fmt.Sprintf("Momentum: Bullish momentum (RSI: %.1f)", rsi))
	} else {
		out = append(out, fmt.Sprintf("Momentum: Bearish momentum (RSI: %.1f)", rsi))
	}

	if ind[models.FieldEMA9] > ind[models.FieldEMA21] {
		out = append(out, "Short-term Trend: Bullish (EMA 9 > EMA 21)")
	} else {
		out = append(out, "Short-term Trend: Bearish (EMA 9 < EMA 21)")
	}

	bbWidth := ind[models.FieldBBWidth]
	switch {
	case bbWidth < 2:
		out = append(out, fmt.Sprintf("Volatility: Low - Expect breakout soon (BB Width: %.2f%%)", bbWidth))
	case bbWidth > 6:
		out = append(out, fmt.Sprintf("Volatility: High - Potential mean reversion (BB Width: %.2f%%)", bbWidth))
	default:
		out = append(out, fmt.Sprintf("Volatility: Normal (BB Width: %.2f%%)", bbWidth))
	}

	volRatio := ind[models.FieldVolumeRatio]
	switch {
	case volRatio > 1.5:
		out = append(out, fmt.Sprintf("Volume: Above average (%.1fx) - Strong participation", volRatio))
	case volRatio < 0.7:
		out = append(out, fmt.Sprintf("Volume: Below average (%.1fx) - Weak participation", volRatio))
	default:
		out = append(out, fmt.Sprintf("Volume: Average (%.1fx) - Normal participation", volRatio))
	}

	return out
}

// RenderInsights writes the insight lines to w.
func RenderInsights(w io.Writer, r *models.AnalysisReport) {
	fmt.Fprintf(w, "\nMARKET INSIGHTS:\n")
	rule(w, "-", 30)
	for _, line := range Insights(r) {
		fmt.Fprintln(w, line)
	}
}
