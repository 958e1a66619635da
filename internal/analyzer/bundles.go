package analyzer

import (
	"math"

	"TickerWatch/internal/calculator"
	"TickerWatch/internal/model"
)

// tradingDaysPerYear scales daily return stdev to annualized volatility.
const tradingDaysPerYear = 252

// opt converts a calculator (value, error) pair into an optional field:
// any calculation error means the field is absent, never zero.
func opt(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	return &v
}

func ptr(v float64) *float64 { return &v }

func technicalAnalysis(prices []float64) *model.TechnicalIndicators {
	current := prices[len(prices)-1]

	t := &model.TechnicalIndicators{
		CurrentPrice: current,
		SMA10:        opt(calculator.SMA(prices, 10)),
		SMA20:        opt(calculator.SMA(prices, 20)),
		SMA50:        opt(calculator.SMA(prices, 50)),
		SMA200:       opt(calculator.SMA(prices, 200)),
		EMA12:        opt(calculator.EMA(prices, 12)),
		EMA26:        opt(calculator.EMA(prices, 26)),
		RSI:          opt(calculator.RSI(prices, 14)),
	}
	t.RSISignal = rsiSignal(t.RSI)

	if macd, signal, histogram, err := calculator.MACD(prices); err == nil {
		t.MACD = ptr(macd)
		t.MACDSignal = ptr(signal)
		t.MACDHistogram = ptr(histogram)
		if macd > signal {
			t.MACDCrossover = "bullish"
		} else {
			t.MACDCrossover = "bearish"
		}
	}

	if upper, middle, lower, err := calculator.BollingerBands(prices, 20); err == nil {
		t.BollingerUpper = ptr(upper)
		t.BollingerMiddle = ptr(middle)
		t.BollingerLower = ptr(lower)
	}
	t.BollingerPosition = bollingerPosition(current, t.BollingerUpper, t.BollingerLower)

	if support, resistance, err := calculator.SupportResistance(prices); err == nil {
		t.SupportLevel = ptr(support)
		t.ResistanceLevel = ptr(resistance)
	}

	if t.SMA50 != nil && *t.SMA50 != 0 {
		t.PriceVsSMA50 = ptr((current - *t.SMA50) / *t.SMA50 * 100)
	}
	if t.SMA200 != nil && *t.SMA200 != 0 {
		t.PriceVsSMA200 = ptr((current - *t.SMA200) / *t.SMA200 * 100)
	}

	return t
}

func volumeAnalysis(volumes, prices []float64) *model.VolumeAnalysis {
	current := volumes[len(volumes)-1]
	avg := mean(volumes)

	v := &model.VolumeAnalysis{
		CurrentVolume: current,
		AverageVolume: avg,
	}
	if avg > 0 {
		v.VolumeRatio = ptr(current / avg)
	}
	if len(volumes) >= 10 {
		v.VolumeTrend = opt(calculator.TrendSlope(volumes[len(volumes)-10:]))
	}
	if current > avg*1.5 {
		v.VolumeSignal = "high"
	} else {
		v.VolumeSignal = "normal"
	}

	if obv, err := calculator.OBV(prices, volumes); err == nil {
		v.OBV = obv
		if len(obv) >= 10 {
			v.OBVTrend = opt(calculator.TrendSlope(obv[len(obv)-10:]))
		}
	}

	return v
}

func trendAnalysis(prices []float64) *model.TrendAnalysis {
	if len(prices) < 2 {
		return nil
	}

	t := &model.TrendAnalysis{}
	if len(prices) >= 10 {
		t.ShortTermTrend = opt(calculator.TrendSlope(prices[len(prices)-10:]))
	}
	if len(prices) >= 30 {
		t.MediumTermTrend = opt(calculator.TrendSlope(prices[len(prices)-30:]))
	}
	t.LongTermTrend = opt(calculator.TrendSlope(prices))
	t.OverallTrend = classifyTrend(t.ShortTermTrend, t.MediumTermTrend, t.LongTermTrend)

	t.PriceChange1D = percentChange(prices, 1)
	t.PriceChange5D = percentChange(prices, 5)
	t.PriceChange30D = percentChange(prices, 30)

	highest := prices[0]
	lowest := prices[0]
	for _, p := range prices {
		if p > highest {
			highest = p
		}
		if p < lowest {
			lowest = p
		}
	}
	t.HighestPrice = highest
	t.LowestPrice = lowest
	t.PriceRange = highest - lowest

	return t
}

func volatilityAnalysis(prices []float64) *model.VolatilityAnalysis {
	if len(prices) < 2 {
		return nil
	}

	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}

	volatility := 0.0
	if len(returns) > 1 {
		volatility = stdevOf(returns)
	}
	annualized := volatility * math.Sqrt(tradingDaysPerYear)

	return &model.VolatilityAnalysis{
		Volatility:           volatility,
		AnnualizedVolatility: annualized,
		VolatilityPercent:    volatility * 100,
		ATR:                  opt(calculator.ATR(prices, 14)),
		VolatilityRating:     rateVolatility(annualized),
	}
}

func momentumAnalysis(prices []float64) *model.MomentumAnalysis {
	// The momentum block only exists from 10 data points on, even though
	// some of its fields need more history than that.
	if len(prices) < 10 {
		return nil
	}

	m := &model.MomentumAnalysis{
		ROC10:      opt(calculator.ROC(prices, 10)),
		ROC20:      opt(calculator.ROC(prices, 20)),
		Momentum10: opt(calculator.Momentum(prices, 10)),
		Stochastic: opt(calculator.Stochastic(prices, 14)),
	}
	m.StochasticSignal = stochasticSignal(m.Stochastic)
	m.MomentumRating = rateMomentum(m.ROC10)
	return m
}

// percentChange returns the percentage change over `steps` back, or nil when
// the series is too short.
func percentChange(prices []float64, steps int) *float64 {
	if len(prices) < steps+1 {
		return nil
	}
	base := prices[len(prices)-1-steps]
	return ptr((prices[len(prices)-1] - base) / base * 100)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdevOf computes the sample standard deviation over all values.
func stdevOf(values []float64) float64 {
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
