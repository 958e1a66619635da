package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"TickerWatch/internal/model"
)

const rule = "============================================================"

// FormatWatchlistSummary renders the watchlist price table.
func FormatWatchlistSummary(symbols []string, prices map[string]float64) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("STOCK WATCHLIST SUMMARY\n")
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Stocks tracked: %d\n", len(symbols)))
	b.WriteString(fmt.Sprintf("Symbols: %s\n", strings.Join(symbols, ", ")))
	b.WriteString(rule + "\n")

	for _, symbol := range symbols {
		if price, ok := prices[symbol]; ok {
			b.WriteString(fmt.Sprintf("%-8s $%10.2f\n", symbol, price))
		} else {
			b.WriteString(fmt.Sprintf("%-8s %10s\n", symbol, "N/A"))
		}
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// FormatAnalysisReport renders one analysis result for the console.
func FormatAnalysisReport(result *model.AnalysisResult) string {
	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("%s | %s\n", result.Symbol, result.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Current Price: $%.2f (%d data points)\n", result.CurrentPrice, result.DataPoints))

	if t := result.Technical; t != nil {
		b.WriteString("\nTechnical:\n")
		writeValue(&b, "  SMA10", t.SMA10)
		writeValue(&b, "  SMA20", t.SMA20)
		writeValue(&b, "  SMA50", t.SMA50)
		writeValue(&b, "  SMA200", t.SMA200)
		if t.RSI != nil {
			b.WriteString(fmt.Sprintf("  RSI(14): %.2f (%s)\n", *t.RSI, t.RSISignal))
		}
		if t.MACD != nil {
			b.WriteString(fmt.Sprintf("  MACD: %.4f (%s)\n", *t.MACD, t.MACDCrossover))
		}
		if t.SupportLevel != nil && t.ResistanceLevel != nil {
			b.WriteString(fmt.Sprintf("  Support/Resistance: $%.2f / $%.2f\n", *t.SupportLevel, *t.ResistanceLevel))
		}
	}

	if v := result.Volume; v != nil {
		b.WriteString("\nVolume:\n")
		b.WriteString(fmt.Sprintf("  Current: %s (avg %s, signal %s)\n",
			humanize.Comma(int64(v.CurrentVolume)), humanize.Comma(int64(v.AverageVolume)), v.VolumeSignal))
	}

	if tr := result.Trend; tr != nil {
		b.WriteString(fmt.Sprintf("\nTrend: %s (range $%.2f - $%.2f)\n",
			tr.OverallTrend, tr.LowestPrice, tr.HighestPrice))
	}
	if vol := result.Volatility; vol != nil {
		b.WriteString(fmt.Sprintf("Volatility: %.2f%% daily, rating %s\n",
			vol.VolatilityPercent, vol.VolatilityRating))
	}
	if mom := result.Momentum; mom != nil {
		b.WriteString(fmt.Sprintf("Momentum: rating %s\n", mom.MomentumRating))
	}

	if rec := result.Recommendation; rec != nil {
		b.WriteString(fmt.Sprintf("\nRecommendation: %s (score %+d, confidence %d%%)\n",
			rec.Recommendation, rec.Score, rec.Confidence))
		for _, signal := range rec.Signals {
			b.WriteString(fmt.Sprintf("  - %s\n", signal))
		}
	}

	b.WriteString("\n" + result.Summary + "\n")
	b.WriteString(rule + "\n")
	return b.String()
}

// FormatBatchHeader renders the banner printed before each monitoring sweep.
func FormatBatchHeader(now time.Time) string {
	return fmt.Sprintf("%s\nUpdate: %s\n%s", rule, now.Format("2006-01-02 15:04:05"), rule)
}

// FormatFailures renders per-symbol batch failures in a stable order.
func FormatFailures(failures map[string]error) string {
	if len(failures) == 0 {
		return ""
	}
	symbols := make([]string, 0, len(failures))
	for symbol := range failures {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var b strings.Builder
	for _, symbol := range symbols {
		b.WriteString(fmt.Sprintf("%s: analysis failed: %v\n", symbol, failures[symbol]))
	}
	return b.String()
}

func writeValue(b *strings.Builder, label string, v *float64) {
	if v == nil {
		return
	}
	b.WriteString(fmt.Sprintf("%s: $%.2f\n", label, *v))
}
