package calculator

import "errors"

// SMA computes the simple moving average of the trailing `period` prices.
func SMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// EMA computes the exponential moving average over the full series. The seed
// is the mean of the FIRST `period` prices, then the multiplier 2/(period+1)
// is folded forward over the remainder. The leading-window seed is an
// intentional property of this engine; downstream values depend on it.
func EMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for EMA calculation")
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += prices[i]
	}
	ema := seed / float64(period)

	multiplier := 2.0 / float64(period+1)
	for _, price := range prices[period:] {
		ema = (price-ema)*multiplier + ema
	}
	return ema, nil
}
