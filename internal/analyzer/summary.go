package analyzer

import (
	"fmt"
	"strings"

	"TickerWatch/internal/model"
)

// buildSummary renders the one-line human summary: symbol header, price,
// recommendation, title-cased trend, and the RSI clause when RSI exists.
func buildSummary(result *model.AnalysisResult) string {
	parts := []string{
		fmt.Sprintf("%s Analysis Summary", result.Symbol),
		fmt.Sprintf("Current Price: $%.2f", result.CurrentPrice),
	}

	recommendation := "N/A"
	if result.Recommendation != nil {
		recommendation = result.Recommendation.Recommendation
	}
	parts = append(parts, fmt.Sprintf("Recommendation: %s", recommendation))

	trend := "unknown"
	if result.Trend != nil && result.Trend.OverallTrend != "" {
		trend = result.Trend.OverallTrend
	}
	parts = append(parts, fmt.Sprintf("Trend: %s", titleCase(trend)))

	if result.Technical != nil && result.Technical.RSI != nil {
		parts = append(parts, fmt.Sprintf("RSI: %.2f (%s)", *result.Technical.RSI, result.Technical.RSISignal))
	} else {
		parts = append(parts, "RSI: N/A")
	}

	return strings.Join(parts, " | ")
}

// titleCase turns "strong_uptrend" into "Strong Uptrend".
func titleCase(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
