package models

import "time"

// KeyLevels are the price levels a discretionary trader watches around the
// current candle: classic pivots plus the volatility bands and trend EMAs.
type KeyLevels struct {
	Pivot       float64 `json:"pivot"`
	Resistance1 float64 `json:"resistance_1"`
	Support1    float64 `json:"support_1"`
	BBUpper     float64 `json:"bb_upper"`
	BBLower     float64 `json:"bb_lower"`
	EMA21       float64 `json:"ema_21"`
	EMA50       float64 `json:"ema_50"`
}

// RiskProfile summarizes volatility-derived risk parameters.
type RiskProfile struct {
	ATR             float64 `json:"atr"`
	ATRPercent      float64 `json:"atr_percent"`
	SuggestedStop   float64 `json:"suggested_stop"`
	VolatilityLevel string  `json:"volatility_level"` // High, Medium, Low
}

// AnalysisReport is the durable output of one analysis request: the bias
// verdict plus everything the report consumer needs to render it.
type AnalysisReport struct {
	Symbol     string        `json:"symbol"`
	Interval   string        `json:"interval"`
	AnalyzedAt time.Time     `json:"analyzed_at"`
	Price      float64       `json:"price"`
	RangeHigh  float64       `json:"range_high"`
	RangeLow   float64       `json:"range_low"`
	Bias       BiasResult    `json:"bias"`
	Signals    ConfluenceSet `json:"signals"`
	Levels     KeyLevels     `json:"levels"`
	Risk       RiskProfile   `json:"risk"`

	// Indicators carries the raw indicator values the verdict was derived
	// from, keyed by the snapshot field names.
	Indicators map[string]float64 `json:"indicators"`
}
