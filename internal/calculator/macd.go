package calculator

// MACD computes the MACD line (EMA12 - EMA26), its signal line, and the
// histogram. The signal line is a fixed 0.9 multiple of the MACD line, a
// simplified stand-in for the textbook 9-period EMA of MACD; it must stay
// that way for output parity with existing consumers.
func MACD(prices []float64) (macd, signal, histogram float64, err error) {
	ema12, err := EMA(prices, 12)
	if err != nil {
		return 0, 0, 0, err
	}
	ema26, err := EMA(prices, 26)
	if err != nil {
		return 0, 0, 0, err
	}

	macd = ema12 - ema26
	signal = macd * 0.9
	histogram = macd - signal
	return macd, signal, histogram, nil
}
