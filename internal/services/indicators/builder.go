package indicators

import (
	"fmt"

	"BiasScope/internal/domain/models"
	domsvc "BiasScope/internal/domain/service"
)

// MinCandles is the shortest series the builder accepts: enough warmup for
// the 50-period EMA and the Wilder-smoothed indicators to settle.
const MinCandles = 60

// Builder computes the full indicator set over a candle series and packs the
// values for the last completed candle into a snapshot.
type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

var _ domsvc.SnapshotBuilder = (*Builder)(nil)

// Build computes indicators for the latest candle of the series. Candles
// must be in ascending time order.
func (b *Builder) Build(candles []models.Candle, symbol, interval string) (*models.Snapshot, error) {
	if len(candles) < MinCandles {
		return nil, fmt.Errorf("need at least %d candles, got %d", MinCandles, len(candles))
	}

	n := len(candles)
	opens := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closes := make([]float64, n)
	volumes := make([]float64, n)
	for i, c := range candles {
		opens[i] = c.Open
		highs[i] = c.High
		lows[i] = c.Low
		closes[i] = c.Close
		volumes[i] = c.Volume
	}
	last := candles[n-1]

	values := make(map[string]float64, len(models.RequiredFields)+10)

	values[models.FieldRSI14] = RSI(closes, 14)
	k, d := Stochastic(highs, lows, closes, 14)
	values[models.FieldStochK] = k
	values[models.FieldStochD] = d
	values[models.FieldWilliamsR] = WilliamsR(highs, lows, closes, 14)

	values[models.FieldEMA9] = EMA(closes, 9)
	values[models.FieldEMA21] = EMA(closes, 21)
	values[models.FieldEMA50] = EMA(closes, 50)
	values[models.FieldSMA20] = SMA(closes, 20)
	values[models.FieldSMA50] = SMA(closes, 50)

	macd, macdSignal, histogram := MACD(closes)
	values[models.FieldMACD] = macd
	values[models.FieldMACDSignal] = macdSignal
	values[models.FieldMACDHistogram] = histogram

	adx, diPlus, diMinus := ADX(highs, lows, closes, 14)
	values[models.FieldADX] = adx
	values[models.FieldDIPlus] = diPlus
	values[models.FieldDIMinus] = diMinus

	middle := SMA(closes, 20)
	dev := StdDev(closes, 20)
	upper := middle + 2*dev
	lower := middle - 2*dev
	values[models.FieldBBUpper] = upper
	values[models.FieldBBMiddle] = middle
	values[models.FieldBBLower] = lower
	values[models.FieldBBWidth] = (upper - lower) / middle * 100
	if upper == lower {
		values[models.FieldBBPosition] = 0.5
	} else {
		values[models.FieldBBPosition] = (last.Close - lower) / (upper - lower)
	}

	atr := ATR(highs, lows, closes, 14)
	values[models.FieldATR] = atr
	values[models.FieldATRPercent] = atr / last.Close * 100

	volSMA := SMA(volumes, 20)
	values[models.FieldVolumeSMA] = volSMA
	if volSMA == 0 {
		values[models.FieldVolumeRatio] = 0
	} else {
		values[models.FieldVolumeRatio] = last.Volume / volSMA
	}
	values[models.FieldCMF] = CMF(highs, lows, closes, volumes, 20)

	body := last.Close - last.Open
	if body < 0 {
		body = -body
	}
	values[models.FieldBodySize] = body / last.Open * 100
	top, bottom := last.Open, last.Close
	if last.Close > last.Open {
		top, bottom = last.Close, last.Open
	}
	values[models.FieldUpperWick] = (last.High - top) / last.Open * 100
	values[models.FieldLowerWick] = (bottom - last.Low) / last.Open * 100

	pivot := (last.High + last.Low + last.Close) / 3
	values[models.FieldPivot] = pivot
	values[models.FieldR1] = 2*pivot - last.Low
	values[models.FieldS1] = 2*pivot - last.High

	return &models.Snapshot{
		Symbol:    symbol,
		Interval:  interval,
		Timestamp: last.CloseTime,
		Open:      last.Open,
		High:      last.High,
		Low:       last.Low,
		Close:     last.Close,
		Volume:    last.Volume,
		Values:    values,
	}, nil
}
