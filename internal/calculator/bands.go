package calculator

import (
	"errors"
	"math"
)

// BollingerBands computes the middle band (SMA of the trailing window) and
// the upper/lower bands at two sample standard deviations.
func BollingerBands(prices []float64, period int) (upper, middle, lower float64, err error) {
	middle, err = SMA(prices, period)
	if err != nil {
		return 0, 0, 0, err
	}

	window := prices[len(prices)-period:]
	stdev := sampleStdev(window)

	upper = middle + 2*stdev
	lower = middle - 2*stdev
	return upper, middle, lower, nil
}

// SupportResistance returns the min/max of the trailing 30 prices, or of the
// whole series when shorter. Undefined below 10 data points.
func SupportResistance(prices []float64) (support, resistance float64, err error) {
	if len(prices) < 10 {
		return 0, 0, errors.New("not enough data for support/resistance calculation")
	}

	recent := prices
	if len(prices) >= 30 {
		recent = prices[len(prices)-30:]
	}

	support = math.Inf(1)
	resistance = math.Inf(-1)
	for _, p := range recent {
		if p < support {
			support = p
		}
		if p > resistance {
			resistance = p
		}
	}
	return support, resistance, nil
}

// sampleStdev computes the sample standard deviation (n-1 denominator).
// Returns 0 for windows shorter than two values.
func sampleStdev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	return math.Sqrt(variance)
}
