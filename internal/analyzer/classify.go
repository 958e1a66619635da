package analyzer

// rsiSignal tags the RSI reading. Overbought above 70, oversold below 30.
func rsiSignal(rsi *float64) string {
	if rsi == nil {
		return "unknown"
	}
	switch {
	case *rsi > 70:
		return "overbought"
	case *rsi < 30:
		return "oversold"
	default:
		return "neutral"
	}
}

// bollingerPosition places the current price relative to the bands.
func bollingerPosition(price float64, upper, lower *float64) string {
	if upper == nil || lower == nil {
		return "unknown"
	}
	switch {
	case price > *upper:
		return "above_upper"
	case price < *lower:
		return "below_lower"
	default:
		return "within_bands"
	}
}

// stochasticSignal tags the stochastic reading. Overbought above 80,
// oversold below 20.
func stochasticSignal(stochastic *float64) string {
	if stochastic == nil {
		return "unknown"
	}
	switch {
	case *stochastic > 80:
		return "overbought"
	case *stochastic < 20:
		return "oversold"
	default:
		return "neutral"
	}
}

// classifyTrend averages whichever slopes are available and maps the mean
// onto the five trend categories.
func classifyTrend(short, medium, long *float64) string {
	var sum float64
	var count int
	for _, t := range []*float64{short, medium, long} {
		if t != nil {
			sum += *t
			count++
		}
	}
	if count == 0 {
		return "unknown"
	}

	avg := sum / float64(count)
	switch {
	case avg > 0.5:
		return "strong_uptrend"
	case avg > 0.1:
		return "uptrend"
	case avg > -0.1:
		return "sideways"
	case avg > -0.5:
		return "downtrend"
	default:
		return "strong_downtrend"
	}
}

// rateVolatility maps annualized volatility onto a five-level rating.
func rateVolatility(annualized float64) string {
	switch {
	case annualized > 0.4:
		return "very_high"
	case annualized > 0.3:
		return "high"
	case annualized > 0.2:
		return "moderate"
	case annualized > 0.1:
		return "low"
	default:
		return "very_low"
	}
}

// rateMomentum maps ROC(10) onto a five-level rating.
func rateMomentum(roc10 *float64) string {
	if roc10 == nil {
		return "unknown"
	}
	switch {
	case *roc10 > 10:
		return "very_strong"
	case *roc10 > 5:
		return "strong"
	case *roc10 > -5:
		return "neutral"
	case *roc10 > -10:
		return "weak"
	default:
		return "very_weak"
	}
}
