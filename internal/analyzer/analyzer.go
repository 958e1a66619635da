package analyzer

import (
	"errors"
	"time"

	"TickerWatch/internal/model"
	"TickerWatch/internal/strategy"
)

// Fatal-tier errors: no bundles are computed when these are returned.
var (
	// ErrNoData means the historical record was nil or carried no rows.
	ErrNoData = errors.New("no data available for analysis")
	// ErrNoPriceData means rows were present but no closing prices could be
	// extracted from them.
	ErrNoPriceData = errors.New("could not extract price data")
)

// Analyzer derives technical indicators and a recommendation from a raw
// historical dataset. It holds no state: every Analyze call reads only its
// arguments and allocates a fresh result, so concurrent calls are safe.
type Analyzer struct{}

// New returns an Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze runs the full indicator pipeline over a historical dataset. The
// quote is accepted for parity with the data layer but does not influence
// scoring. Per-indicator shortfalls degrade to absent fields; only a missing
// or unparsable price series fails the call.
func (a *Analyzer) Analyze(historical *model.HistoricalData, quote model.Quote) (*model.AnalysisResult, error) {
	if historical == nil || len(historical.Rows) == 0 {
		return nil, ErrNoData
	}

	symbol := historical.Symbol
	if symbol == "" {
		symbol = "UNKNOWN"
	}

	prices := extractPrices(historical)
	if len(prices) == 0 {
		return nil, ErrNoPriceData
	}
	volumes := extractVolumes(historical)

	result := &model.AnalysisResult{
		Symbol:       symbol,
		Timestamp:    time.Now(),
		DataPoints:   len(prices),
		CurrentPrice: prices[len(prices)-1],
	}

	result.Technical = technicalAnalysis(prices)
	if len(volumes) > 0 {
		result.Volume = volumeAnalysis(volumes, prices)
	}
	result.Trend = trendAnalysis(prices)
	result.Volatility = volatilityAnalysis(prices)
	result.Momentum = momentumAnalysis(prices)

	result.Recommendation = strategy.Evaluate(result)
	result.Summary = buildSummary(result)

	return result, nil
}

// extractPrices pulls closing prices out of the raw rows. The provider sends
// rows newest-first; the returned slice is chronological. Cells that are
// missing, non-numeric, or zero are skipped; a zero close is a data gap, not
// a price, and would poison the return-based metrics downstream.
func extractPrices(historical *model.HistoricalData) []float64 {
	idx := columnIndex(historical.Columns, "Close", 4)
	return extractColumn(historical.Rows, idx)
}

// extractVolumes mirrors extractPrices for the Volume column.
func extractVolumes(historical *model.HistoricalData) []float64 {
	idx := columnIndex(historical.Columns, "Volume", 5)
	return extractColumn(historical.Rows, idx)
}

func columnIndex(columns []string, name string, fallback int) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return fallback
}

func extractColumn(rows [][]any, idx int) []float64 {
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		if idx < 0 || idx >= len(row) {
			continue
		}
		v, ok := toFloat(row[idx])
		if !ok || v == 0 {
			continue
		}
		values = append(values, v)
	}
	// Reverse to chronological order (oldest first).
	for i, j := 0, len(values)-1; i < j; i, j = i+1, j-1 {
		values[i], values[j] = values[j], values[i]
	}
	return values
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
