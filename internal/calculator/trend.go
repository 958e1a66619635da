package calculator

import "errors"

// TrendSlope fits an ordinary-least-squares line of value against index
// 0..n-1 and returns its slope. A window with zero index variance yields 0.
func TrendSlope(values []float64) (float64, error) {
	n := len(values)
	if n < 2 {
		return 0, errors.New("not enough data for trend calculation")
	}

	xMean := float64(n-1) / 2
	yMean := 0.0
	for _, v := range values {
		yMean += v
	}
	yMean /= float64(n)

	var numerator, denominator float64
	for i, v := range values {
		dx := float64(i) - xMean
		numerator += dx * (v - yMean)
		denominator += dx * dx
	}
	if denominator == 0 {
		return 0, nil
	}
	return numerator / denominator, nil
}
