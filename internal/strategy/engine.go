package strategy

import (
	"fmt"
	"strings"

	"TickerWatch/internal/model"
)

// rule is one scoring step: when the predicate matches, the delta is added
// to the total and the message is appended to the signal list. Rules run in
// declaration order.
type rule struct {
	match   func(*model.AnalysisResult) bool
	delta   int
	message func(*model.AnalysisResult) string
}

func staticMessage(msg string) func(*model.AnalysisResult) string {
	return func(*model.AnalysisResult) string { return msg }
}

// rules is the fixed, ordered rule list. Order matters only for the signal
// list; the score is a plain sum.
var rules = []rule{
	{
		match:   func(r *model.AnalysisResult) bool { return r.Technical != nil && r.Technical.RSISignal == "oversold" },
		delta:   2,
		message: staticMessage("RSI oversold - potential buy"),
	},
	{
		match:   func(r *model.AnalysisResult) bool { return r.Technical != nil && r.Technical.RSISignal == "overbought" },
		delta:   -2,
		message: staticMessage("RSI overbought - potential sell"),
	},
	{
		match:   func(r *model.AnalysisResult) bool { return r.Technical != nil && r.Technical.MACDCrossover == "bullish" },
		delta:   1,
		message: staticMessage("MACD bullish crossover"),
	},
	{
		match:   func(r *model.AnalysisResult) bool { return r.Technical != nil && r.Technical.MACDCrossover == "bearish" },
		delta:   -1,
		message: staticMessage("MACD bearish crossover"),
	},
	{
		match: func(r *model.AnalysisResult) bool {
			return r.Trend != nil && strings.Contains(r.Trend.OverallTrend, "uptrend")
		},
		delta: 2,
		message: func(r *model.AnalysisResult) string {
			return fmt.Sprintf("Price in %s", r.Trend.OverallTrend)
		},
	},
	{
		match: func(r *model.AnalysisResult) bool {
			return r.Trend != nil && strings.Contains(r.Trend.OverallTrend, "downtrend")
		},
		delta: -2,
		message: func(r *model.AnalysisResult) string {
			return fmt.Sprintf("Price in %s", r.Trend.OverallTrend)
		},
	},
	{
		match: func(r *model.AnalysisResult) bool {
			return r.Technical != nil && r.Technical.PriceVsSMA50 != nil && *r.Technical.PriceVsSMA50 > 5
		},
		delta:   1,
		message: staticMessage("Price above 50-day SMA"),
	},
	{
		match: func(r *model.AnalysisResult) bool {
			return r.Technical != nil && r.Technical.PriceVsSMA50 != nil && *r.Technical.PriceVsSMA50 < -5
		},
		delta:   -1,
		message: staticMessage("Price below 50-day SMA"),
	},
}

// Evaluate fuses the bundle signals into a buy/hold/sell recommendation.
// It is deterministic: the same tags always produce the same score, label,
// and confidence.
func Evaluate(result *model.AnalysisResult) *model.Recommendation {
	score := 0
	signals := []string{}
	for _, r := range rules {
		if r.match(result) {
			score += r.delta
			signals = append(signals, r.message(result))
		}
	}

	confidence := score * 15
	if confidence < 0 {
		confidence = -confidence
	}
	if confidence > 100 {
		confidence = 100
	}

	return &model.Recommendation{
		Recommendation: mapLabel(score),
		Score:          score,
		Signals:        signals,
		Confidence:     confidence,
	}
}

// mapLabel maps a total score to the recommendation label.
func mapLabel(score int) string {
	switch {
	case score >= 4:
		return "STRONG BUY"
	case score >= 2:
		return "BUY"
	case score >= -1:
		return "HOLD"
	case score >= -3:
		return "SELL"
	default:
		return "STRONG SELL"
	}
}
