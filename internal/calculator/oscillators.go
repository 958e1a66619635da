package calculator

import (
	"errors"
	"math"
)

// ROC computes the percentage rate of change over `period` steps. Requires
// period+1 prices.
func ROC(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, errors.New("not enough data for ROC calculation")
	}
	base := prices[len(prices)-1-period]
	return (prices[len(prices)-1] - base) / base * 100, nil
}

// Momentum computes the raw price delta over `period` steps.
func Momentum(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, errors.New("not enough data for momentum calculation")
	}
	return prices[len(prices)-1] - prices[len(prices)-1-period], nil
}

// Stochastic computes the stochastic oscillator over the trailing `period`
// prices: where the current price sits within the window's range, scaled to
// [0,100]. A flat window (max == min) is defined as 50.
func Stochastic(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for stochastic calculation")
	}

	recent := prices[len(prices)-period:]
	highest := math.Inf(-1)
	lowest := math.Inf(1)
	for _, p := range recent {
		if p > highest {
			highest = p
		}
		if p < lowest {
			lowest = p
		}
	}

	if highest == lowest {
		return 50, nil
	}
	current := prices[len(prices)-1]
	return (current - lowest) / (highest - lowest) * 100, nil
}

// ATR computes a simplified average true range: the mean of the trailing
// `period` absolute one-step price deltas (close-to-close, not high/low
// range). Requires period+1 prices.
func ATR(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period+1 {
		return 0, errors.New("not enough data for ATR calculation")
	}

	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += math.Abs(prices[i] - prices[i-1])
	}
	return sum / float64(period), nil
}
