package models

import "time"

// Indicator field names used by the confluence evaluators. The snapshot
// producer must populate every one of these for the engine to accept it.
const (
	FieldRSI14         = "rsi_14"
	FieldStochK        = "stoch_k"
	FieldStochD        = "stoch_d"
	FieldWilliamsR     = "williams_r"
	FieldEMA9          = "ema_9"
	FieldEMA21         = "ema_21"
	FieldEMA50         = "ema_50"
	FieldSMA20         = "sma_20"
	FieldSMA50         = "sma_50"
	FieldMACD          = "macd"
	FieldMACDSignal    = "macd_signal"
	FieldMACDHistogram = "macd_histogram"
	FieldADX           = "adx"
	FieldDIPlus        = "di_plus"
	FieldDIMinus       = "di_minus"
	FieldBBUpper       = "bb_upper"
	FieldBBMiddle      = "bb_middle"
	FieldBBLower       = "bb_lower"
	FieldBBWidth       = "bb_width"
	FieldBBPosition    = "bb_position"
	FieldATR           = "atr"
	FieldATRPercent    = "atr_percent"
	FieldVolumeSMA     = "volume_sma"
	FieldVolumeRatio   = "volume_ratio"
	FieldCMF           = "cmf"
	FieldBodySize      = "body_size"
	FieldUpperWick     = "upper_wick"
	FieldLowerWick     = "lower_wick"
	FieldPivot         = "pivot"
	FieldR1            = "r1"
	FieldS1            = "s1"
)

// RequiredFields lists every indicator the evaluators read. Snapshot
// validation rejects a snapshot missing any of them.
var RequiredFields = []string{
	FieldRSI14, FieldStochK, FieldStochD, FieldWilliamsR,
	FieldEMA9, FieldEMA21, FieldEMA50,
	FieldMACD, FieldMACDSignal, FieldMACDHistogram,
	FieldADX, FieldDIPlus, FieldDIMinus,
	FieldBBWidth, FieldBBPosition, FieldATRPercent,
	FieldVolumeRatio, FieldCMF,
	FieldBodySize, FieldUpperWick, FieldLowerWick,
}

// Snapshot is an immutable bundle of raw OHLCV values and computed indicator
// values for the most recent completed period. Produced once per analysis
// request and discarded after use.
type Snapshot struct {
	Symbol    string
	Interval  string
	Timestamp time.Time

	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	Values map[string]float64
}

// Get returns the named indicator value and whether it is present.
func (s *Snapshot) Get(name string) (float64, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// Value returns the named indicator value, or zero when absent. Callers that
// care about presence must validate the snapshot first.
func (s *Snapshot) Value(name string) float64 {
	return s.Values[name]
}
