package report

import (
	"fmt"
	"io"

	"BiasScope/internal/domain/models"
)

// planConfidenceGate is the minimum confidence before a directional setup is
// suggested; below it the plan falls back to range trading.
const planConfidenceGate = 60

// RenderPlan writes trading plan suggestions derived from the bias verdict
// and key levels.
func RenderPlan(w io.Writer, r *models.AnalysisReport) {
	fmt.Fprintf(w, "\nTRADING PLAN SUGGESTIONS:\n")
	rule(w, "=", 50)

	switch {
	case r.Bias.Label == models.BiasBullish && r.Bias.Confidence > planConfidenceGate:
		fmt.Fprintln(w, "BULLISH SETUP IDENTIFIED")
		fmt.Fprintf(w, "   Entry Strategy: Look for pullbacks to EMA 21 ($%.4f) or BB Middle\n", r.Levels.EMA21)
		fmt.Fprintf(w, "   Stop Loss: Below EMA 50 ($%.4f) or %.4f below entry\n", r.Levels.EMA50, r.Risk.ATR*1.5)
		fmt.Fprintf(w, "   Target 1: Pivot R1 ($%.4f)\n", r.Levels.Resistance1)
		fmt.Fprintf(w, "   Target 2: BB Upper Band ($%.4f)\n", r.Levels.BBUpper)
		fmt.Fprintln(w, "   Risk/Reward: Aim for 1:2 minimum ratio")

	case r.Bias.Label == models.BiasBearish && r.Bias.Confidence > planConfidenceGate:
		fmt.Fprintln(w, "BEARISH SETUP IDENTIFIED")
		fmt.Fprintf(w, "   Entry Strategy: Look for rallies to EMA 21 ($%.4f) or BB Middle\n", r.Levels.EMA21)
		fmt.Fprintf(w, "   Stop Loss: Above EMA 50 ($%.4f) or %.4f above entry\n", r.Levels.EMA50, r.Risk.ATR*1.5)
		fmt.Fprintf(w, "   Target 1: Pivot S1 ($%.4f)\n", r.Levels.Support1)
		fmt.Fprintf(w, "   Target 2: BB Lower Band ($%.4f)\n", r.Levels.BBLower)
		fmt.Fprintln(w, "   Risk/Reward: Aim for 1:2 minimum ratio")

	default:
		fmt.Fprintln(w, "MIXED/RANGING MARKET")
		fmt.Fprintln(w, "   Strategy: Range trading between key levels")
		fmt.Fprintf(w, "   Buy Zone: Near BB Lower ($%.4f) or Support\n", r.Levels.BBLower)
		fmt.Fprintf(w, "   Sell Zone: Near BB Upper ($%.4f) or Resistance\n", r.Levels.BBUpper)
		fmt.Fprintf(w, "   Stop Loss: Beyond range boundaries + %.4f\n", r.Risk.ATR)
		fmt.Fprintln(w, "   Wait for: Clear breakout with volume confirmation")
	}

	fmt.Fprintf(w, "\nRISK MANAGEMENT RULES:\n")
	fmt.Fprintln(w, "   - Position Size: Risk only 1-2% of capital per trade")
	fmt.Fprintf(w, "   - ATR Stop: %.4f (Current volatility measure)\n", r.Risk.ATR)
	fmt.Fprintf(w, "   - Volume Confirmation: Wait for volume > %.0f\n", r.Indicators[models.FieldVolumeSMA])
	fmt.Fprintln(w, "   - Time Filter: Avoid news events and low liquidity hours")
}
