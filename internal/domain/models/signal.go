package models

// Direction classifies which side of the market a signal argues for.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
	Neutral Direction = "neutral"
)

// Strength is the ordinal weight class of a signal, Strong > Medium > Low.
type Strength string

const (
	Strong Strength = "Strong"
	Medium Strength = "Medium"
	Low    Strength = "Low"
)

// Weight maps strength to its scoring weight. Unrecognized values weigh 1 so
// a malformed signal can never zero out a direction's score.
func (s Strength) Weight() int {
	switch s {
	case Strong:
		return 3
	case Medium:
		return 2
	case Low:
		return 1
	default:
		return 1
	}
}

// Signal is one rule-triggered observation. Value object: built once by an
// evaluator, never mutated.
type Signal struct {
	Indicator   string    `json:"indicator"`
	Direction   Direction `json:"direction"`
	Condition   string    `json:"condition"`
	Implication string    `json:"implication"`
	Strength    Strength  `json:"strength"`
	Timeframe   string    `json:"timeframe"`
}

// ConfluenceSet holds detected signals grouped by direction. Ordering inside
// each slice is the fixed evaluator sequence, so equal inputs always produce
// equal output.
type ConfluenceSet struct {
	Bullish []Signal `json:"bullish"`
	Bearish []Signal `json:"bearish"`
	Neutral []Signal `json:"neutral"`
}

// Add appends a signal to the slice matching its direction.
func (cs *ConfluenceSet) Add(sig Signal) {
	switch sig.Direction {
	case Bullish:
		cs.Bullish = append(cs.Bullish, sig)
	case Bearish:
		cs.Bearish = append(cs.Bearish, sig)
	default:
		cs.Neutral = append(cs.Neutral, sig)
	}
}

// Merge concatenates another set onto this one, preserving order.
func (cs *ConfluenceSet) Merge(other ConfluenceSet) {
	cs.Bullish = append(cs.Bullish, other.Bullish...)
	cs.Bearish = append(cs.Bearish, other.Bearish...)
	cs.Neutral = append(cs.Neutral, other.Neutral...)
}

// Total returns the number of signals across all directions.
func (cs *ConfluenceSet) Total() int {
	return len(cs.Bullish) + len(cs.Bearish) + len(cs.Neutral)
}

// Bias labels produced by the aggregator.
const (
	BiasBullish  = "Bullish Bias"
	BiasBearish  = "Bearish Bias"
	BiasMixed    = "Mixed/Neutral"
	BiasNoSignal = "No Clear Signal"
)

// BiasResult is the engine's final verdict: a label plus the percentage of
// the total weighted score attributable to the winning direction.
type BiasResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`

	BullishScore int `json:"bullish_score"`
	BearishScore int `json:"bearish_score"`
	NeutralScore int `json:"neutral_score"`
}
