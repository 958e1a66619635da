package monitor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TickerWatch/internal/collector"
	"TickerWatch/internal/model"
	"TickerWatch/internal/store"
)

func newTestMonitor(prices []float64) *Monitor {
	return NewMonitor(&collector.MockFetcher{Prices: prices}, store.NewMemoryStore(), 90)
}

func TestAddStocks_NormalizesAndDeduplicates(t *testing.T) {
	m := newTestMonitor([]float64{100})
	require.NoError(t, m.AddStocks(" aapl ", "MSFT", "aapl", ""))

	symbols, err := m.Watchlist()
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL", "MSFT"}, symbols)
}

func TestRemoveStock(t *testing.T) {
	m := newTestMonitor([]float64{100})
	require.NoError(t, m.AddStocks("AAPL", "MSFT"))
	require.NoError(t, m.RemoveStock("aapl"))

	symbols, err := m.Watchlist()
	require.NoError(t, err)
	assert.Equal(t, []string{"MSFT"}, symbols)
}

func TestCurrentPrices(t *testing.T) {
	m := newTestMonitor([]float64{100, 105, 110})
	require.NoError(t, m.AddStocks("AAPL", "MSFT"))

	prices, err := m.CurrentPrices()
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"AAPL": 110, "MSFT": 110}, prices)
}

func TestAnalyzeStock(t *testing.T) {
	series := make([]float64, 120)
	for i := range series {
		series[i] = 100 + float64(i)*0.5
	}
	m := newTestMonitor(series)

	result, err := m.AnalyzeStock("aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", result.Symbol)
	assert.Equal(t, 120, result.DataPoints)
	require.NotNil(t, result.Recommendation)
	require.NotNil(t, result.Technical.SMA50)
}

func TestAnalyzeWatchlist(t *testing.T) {
	series := make([]float64, 60)
	for i := range series {
		series[i] = 50 + float64(i)
	}
	m := newTestMonitor(series)
	require.NoError(t, m.AddStocks("AAPL", "MSFT", "GOOG"))

	results, failures, err := m.AnalyzeWatchlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, failures)
	require.Len(t, results, 3)
	for symbol, result := range results {
		assert.Equal(t, symbol, result.Symbol)
	}
}

func TestAnalyzeWatchlist_PartialFailure(t *testing.T) {
	// An empty mock yields an unusable current price but a valid history,
	// so force failures with FetchErr instead.
	fetcher := &collector.MockFetcher{FetchErr: assert.AnError}
	m := NewMonitor(fetcher, store.NewMemoryStore(), 90)
	require.NoError(t, m.AddStocks("AAPL"))

	results, failures, err := m.AnalyzeWatchlist(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Contains(t, failures, "AAPL")
}

func TestAlerts(t *testing.T) {
	m := newTestMonitor([]float64{100, 150})
	require.NoError(t, m.SetAlert(model.AlertRule{Symbol: "aapl", Target: 120, Direction: model.AlertAbove}))
	require.NoError(t, m.SetAlert(model.AlertRule{Symbol: "MSFT", Target: 120, Direction: model.AlertBelow}))

	triggered, err := m.CheckAlerts()
	require.NoError(t, err)
	require.Len(t, triggered, 1)
	assert.Contains(t, triggered[0], "AAPL is at $150.00, above target $120.00")

	require.NoError(t, m.RemoveAlert("aapl"))
	triggered, err = m.CheckAlerts()
	require.NoError(t, err)
	assert.Empty(t, triggered)
}

func TestSetAlert_RejectsBadDirection(t *testing.T) {
	m := newTestMonitor([]float64{100})
	err := m.SetAlert(model.AlertRule{Symbol: "AAPL", Target: 1, Direction: "sideways"})
	require.Error(t, err)
}

func TestMovementAlerts(t *testing.T) {
	fp := func(v float64) *float64 { return &v }
	m := newTestMonitor(nil)

	result := &model.AnalysisResult{
		Symbol: "AAPL",
		Trend:  &model.TrendAnalysis{PriceChange1D: fp(-12.5)},
		Volume: &model.VolumeAnalysis{VolumeRatio: fp(3.2)},
	}
	alerts := m.MovementAlerts(result)
	require.Len(t, alerts, 2)
	assert.Contains(t, alerts[0], "AAPL moved -12.50% today (major move)")
	assert.Contains(t, alerts[1], "AAPL volume is 3.2x its average")

	// A move between the significant and major thresholds reports once.
	result = &model.AnalysisResult{
		Symbol: "MSFT",
		Trend:  &model.TrendAnalysis{PriceChange1D: fp(6.0)},
	}
	alerts = m.MovementAlerts(result)
	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0], "significant move")

	// Quiet results and absent bundles produce nothing.
	assert.Empty(t, m.MovementAlerts(&model.AnalysisResult{Symbol: "IBM"}))
	assert.Empty(t, m.MovementAlerts(&model.AnalysisResult{
		Symbol: "IBM",
		Trend:  &model.TrendAnalysis{PriceChange1D: fp(1.0)},
		Volume: &model.VolumeAnalysis{VolumeRatio: fp(1.1)},
	}))
	assert.Empty(t, m.MovementAlerts(nil))

	// Zero thresholds disable their checks.
	m.Alerts = AlertThresholds{}
	assert.Empty(t, m.MovementAlerts(result))
}

func TestEvaluateAlert_Boundaries(t *testing.T) {
	above := model.AlertRule{Symbol: "X", Target: 100, Direction: model.AlertAbove}
	if _, ok := evaluateAlert(above, 100); !ok {
		t.Error("above alert should trigger at the exact target")
	}
	if _, ok := evaluateAlert(above, 99.99); ok {
		t.Error("above alert should not trigger below target")
	}

	below := model.AlertRule{Symbol: "X", Target: 100, Direction: model.AlertBelow}
	if _, ok := evaluateAlert(below, 100); !ok {
		t.Error("below alert should trigger at the exact target")
	}
	if _, ok := evaluateAlert(below, 100.01); ok {
		t.Error("below alert should not trigger above target")
	}
}
