package indicators

import "math"

// Series math over float slices. Smoothed indicators (EMA, RSI, ATR, ADX)
// run over the whole series so the last value has converged by the time it
// reaches the snapshot; callers supply a few hundred candles of warmup.

// SMA returns the simple mean of the last period values.
func SMA(values []float64, period int) float64 {
	if len(values) < period || period <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period)
}

// StdDev returns the population standard deviation of the last period values.
func StdDev(values []float64, period int) float64 {
	if len(values) < period || period <= 0 {
		return math.NaN()
	}
	mean := SMA(values, period)
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(period))
}

// EMASeries returns the exponential moving average at every index, seeded
// with the first value.
func EMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := 2.0 / (float64(period) + 1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// EMA returns the last value of the exponential moving average.
func EMA(values []float64, period int) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	s := EMASeries(values, period)
	return s[len(s)-1]
}

// RSI returns the Wilder relative strength index of the last value.
func RSI(closes []float64, period int) float64 {
	if len(closes) <= period {
		return math.NaN()
	}
	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			avgGain += diff
		} else {
			avgLoss -= diff
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period + 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if diff > 0 {
			gain = diff
		} else {
			loss = -diff
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
	}

	if avgLoss == 0 {
		return 100
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs)
}

// MACD returns the MACD line, signal line, and histogram for the last value
// using the 12/26/9 configuration over the full series.
func MACD(closes []float64) (macd, signal, histogram float64) {
	if len(closes) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	fast := EMASeries(closes, 12)
	slow := EMASeries(closes, 26)
	line := make([]float64, len(closes))
	for i := range closes {
		line[i] = fast[i] - slow[i]
	}
	sig := EMASeries(line, 9)
	n := len(closes) - 1
	return line[n], sig[n], line[n] - sig[n]
}

// StochasticSeries returns the raw %K series starting at index period-1 of
// the input (earlier values are dropped).
func StochasticSeries(highs, lows, closes []float64, period int) []float64 {
	if len(closes) < period {
		return nil
	}
	out := make([]float64, 0, len(closes)-period+1)
	for i := period - 1; i < len(closes); i++ {
		hi, lo := highs[i], lows[i]
		for j := i - period + 1; j <= i; j++ {
			if highs[j] > hi {
				hi = highs[j]
			}
			if lows[j] < lo {
				lo = lows[j]
			}
		}
		if hi == lo {
			out = append(out, 50)
			continue
		}
		out = append(out, (closes[i]-lo)/(hi-lo)*100)
	}
	return out
}

// Stochastic returns the last %K and its 3-period SMA (%D).
func Stochastic(highs, lows, closes []float64, period int) (k, d float64) {
	ks := StochasticSeries(highs, lows, closes, period)
	if len(ks) < 3 {
		return math.NaN(), math.NaN()
	}
	return ks[len(ks)-1], SMA(ks, 3)
}

// WilliamsR returns the last Williams %R over the lookback period.
func WilliamsR(highs, lows, closes []float64, period int) float64 {
	if len(closes) < period {
		return math.NaN()
	}
	hi, lo := highs[len(highs)-period], lows[len(lows)-period]
	for i := len(closes) - period; i < len(closes); i++ {
		if highs[i] > hi {
			hi = highs[i]
		}
		if lows[i] < lo {
			lo = lows[i]
		}
	}
	if hi == lo {
		return -50
	}
	return (hi - closes[len(closes)-1]) / (hi - lo) * -100
}

func trueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if v := math.Abs(high - prevClose); v > tr {
		tr = v
	}
	if v := math.Abs(low - prevClose); v > tr {
		tr = v
	}
	return tr
}

// ATR returns the last Wilder average true range.
func ATR(highs, lows, closes []float64, period int) float64 {
	if len(closes) <= period {
		return math.NaN()
	}
	atr := 0.0
	for i := 1; i <= period; i++ {
		atr += trueRange(highs[i], lows[i], closes[i-1])
	}
	atr /= float64(period)
	for i := period + 1; i < len(closes); i++ {
		atr = (atr*float64(period-1) + trueRange(highs[i], lows[i], closes[i-1])) / float64(period)
	}
	return atr
}

// ADX returns the last average directional index plus the +DI/-DI pair,
// all Wilder-smoothed.
func ADX(highs, lows, closes []float64, period int) (adx, diPlus, diMinus float64) {
	if len(closes) < 2*period+1 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	smTR, smPlus, smMinus := 0.0, 0.0, 0.0
	var dxs []float64

	step := func(i int) (tr, plusDM, minusDM float64) {
		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]
		if upMove > downMove && upMove > 0 {
			plusDM = upMove
		}
		if downMove > upMove && downMove > 0 {
			minusDM = downMove
		}
		return trueRange(highs[i], lows[i], closes[i-1]), plusDM, minusDM
	}

	for i := 1; i <= period; i++ {
		tr, p, m := step(i)
		smTR += tr
		smPlus += p
		smMinus += m
	}

	dx := func() float64 {
		if smTR == 0 {
			return 0
		}
		pdi := 100 * smPlus / smTR
		mdi := 100 * smMinus / smTR
		if pdi+mdi == 0 {
			return 0
		}
		return 100 * math.Abs(pdi-mdi) / (pdi + mdi)
	}
	dxs = append(dxs, dx())

	for i := period + 1; i < len(closes); i++ {
		tr, p, m := step(i)
		smTR = smTR - smTR/float64(period) + tr
		smPlus = smPlus - smPlus/float64(period) + p
		smMinus = smMinus - smMinus/float64(period) + m
		dxs = append(dxs, dx())
	}

	adx = 0.0
	for _, v := range dxs[:period] {
		adx += v
	}
	adx /= float64(period)
	for _, v := range dxs[period:] {
		adx = (adx*float64(period-1) + v) / float64(period)
	}

	if smTR == 0 {
		return adx, 0, 0
	}
	return adx, 100 * smPlus / smTR, 100 * smMinus / smTR
}

// CMF returns the Chaikin Money Flow over the last period.
func CMF(highs, lows, closes, volumes []float64, period int) float64 {
	if len(closes) < period {
		return math.NaN()
	}
	mfv, vol := 0.0, 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		vol += volumes[i]
		if highs[i] == lows[i] {
			continue
		}
		mult := ((closes[i] - lows[i]) - (highs[i] - closes[i])) / (highs[i] - lows[i])
		mfv += mult * volumes[i]
	}
	if vol == 0 {
		return 0
	}
	return mfv / vol
}
