package monitor

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"TickerWatch/internal/analyzer"
	"TickerWatch/internal/collector"
	"TickerWatch/internal/model"
	"TickerWatch/internal/store"
)

// maxConcurrentAnalyses bounds parallel watchlist analysis. The engine is a
// pure function, so concurrency is limited only to keep fetcher pressure sane.
const maxConcurrentAnalyses = 4

// AlertThresholds configures movement and volume alerting on analysis
// results. A zero threshold disables its check.
type AlertThresholds struct {
	SignificantMovePercent float64
	MajorMovePercent       float64
	VolumeMultiple         float64
}

// Monitor owns the watchlist and runs analyses over it.
type Monitor struct {
	Fetcher      collector.Fetcher
	Analyzer     *analyzer.Analyzer
	Store        store.Store
	AnalysisDays int
	Alerts       AlertThresholds
}

// NewMonitor creates a Monitor.
func NewMonitor(fetcher collector.Fetcher, st store.Store, analysisDays int) *Monitor {
	if analysisDays <= 0 {
		analysisDays = 90
	}
	return &Monitor{
		Fetcher:      fetcher,
		Analyzer:     analyzer.New(),
		Store:        st,
		AnalysisDays: analysisDays,
		Alerts: AlertThresholds{
			SignificantMovePercent: 5.0,
			MajorMovePercent:       10.0,
			VolumeMultiple:         2.0,
		},
	}
}

// AddStocks adds one or more symbols to the watchlist. Symbols are
// uppercased and trimmed; duplicates and empty entries are ignored.
func (m *Monitor) AddStocks(symbols ...string) error {
	for _, symbol := range symbols {
		symbol = normalizeSymbol(symbol)
		if symbol == "" {
			continue
		}
		if err := m.Store.AddSymbol(symbol); err != nil {
			return fmt.Errorf("add %s: %w", symbol, err)
		}
		log.Printf("[INFO] added %s to watchlist", symbol)
	}
	return nil
}

// RemoveStock removes a symbol from the watchlist.
func (m *Monitor) RemoveStock(symbol string) error {
	symbol = normalizeSymbol(symbol)
	if err := m.Store.RemoveSymbol(symbol); err != nil {
		return fmt.Errorf("remove %s: %w", symbol, err)
	}
	log.Printf("[INFO] removed %s from watchlist", symbol)
	return nil
}

// Watchlist returns the current watchlist symbols.
func (m *Monitor) Watchlist() ([]string, error) {
	return m.Store.Watchlist()
}

// CurrentPrices fetches the latest close for every watched symbol. Symbols
// whose price could not be fetched are absent from the map.
func (m *Monitor) CurrentPrices() (map[string]float64, error) {
	symbols, err := m.Store.Watchlist()
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		price, err := m.Fetcher.FetchCurrentPrice(symbol)
		if err != nil {
			log.Printf("[WARN] price fetch for %s failed: %v", symbol, err)
			continue
		}
		prices[symbol] = price
	}
	return prices, nil
}

// AnalyzeStock fetches history plus the latest quote for one symbol and runs
// the analysis engine over it.
func (m *Monitor) AnalyzeStock(symbol string) (*model.AnalysisResult, error) {
	symbol = normalizeSymbol(symbol)

	historical, err := m.Fetcher.FetchHistorical(symbol, m.AnalysisDays)
	if err != nil {
		return nil, fmt.Errorf("fetch historical for %s: %w", symbol, err)
	}

	// The quote is best-effort; analysis proceeds without it.
	quote, err := m.Fetcher.FetchQuote(symbol)
	if err != nil {
		log.Printf("[WARN] quote fetch for %s failed: %v", symbol, err)
		quote = nil
	}

	return m.Analyzer.Analyze(historical, quote)
}

// AnalyzeWatchlist analyzes every watched symbol. Independent analyses run
// in parallel; a failed symbol is reported in the error map without
// aborting the rest.
func (m *Monitor) AnalyzeWatchlist(ctx context.Context) (map[string]*model.AnalysisResult, map[string]error, error) {
	symbols, err := m.Store.Watchlist()
	if err != nil {
		return nil, nil, err
	}

	var mu sync.Mutex
	results := make(map[string]*model.AnalysisResult, len(symbols))
	failures := make(map[string]error)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := m.AnalyzeStock(symbol)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[symbol] = err
				return nil
			}
			results[symbol] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, failures, nil
}

// SetAlert registers or replaces a price alert.
func (m *Monitor) SetAlert(rule model.AlertRule) error {
	if rule.Direction != model.AlertAbove && rule.Direction != model.AlertBelow {
		return fmt.Errorf("invalid alert direction %q", rule.Direction)
	}
	rule.Symbol = normalizeSymbol(rule.Symbol)
	return m.Store.SetAlert(rule)
}

// RemoveAlert removes the alert rule for a symbol.
func (m *Monitor) RemoveAlert(symbol string) error {
	return m.Store.RemoveAlert(normalizeSymbol(symbol))
}

// CheckAlerts evaluates all alert rules against current prices and returns
// the triggered alert messages.
func (m *Monitor) CheckAlerts() ([]string, error) {
	rules, err := m.Store.Alerts()
	if err != nil {
		return nil, err
	}

	var triggered []string
	for _, rule := range rules {
		price, err := m.Fetcher.FetchCurrentPrice(rule.Symbol)
		if err != nil {
			log.Printf("[WARN] alert price fetch for %s failed: %v", rule.Symbol, err)
			continue
		}
		if msg, ok := evaluateAlert(rule, price); ok {
			triggered = append(triggered, msg)
		}
	}
	return triggered, nil
}

// MovementAlerts inspects an analysis result for a large one-day price move
// or unusual volume and returns the alert messages.
func (m *Monitor) MovementAlerts(result *model.AnalysisResult) []string {
	if result == nil {
		return nil
	}

	var alerts []string
	if result.Trend != nil && result.Trend.PriceChange1D != nil {
		change := *result.Trend.PriceChange1D
		switch {
		case m.Alerts.MajorMovePercent > 0 && math.Abs(change) >= m.Alerts.MajorMovePercent:
			alerts = append(alerts, fmt.Sprintf("ALERT: %s moved %+.2f%% today (major move)", result.Symbol, change))
		case m.Alerts.SignificantMovePercent > 0 && math.Abs(change) >= m.Alerts.SignificantMovePercent:
			alerts = append(alerts, fmt.Sprintf("ALERT: %s moved %+.2f%% today (significant move)", result.Symbol, change))
		}
	}
	if m.Alerts.VolumeMultiple > 0 && result.Volume != nil && result.Volume.VolumeRatio != nil {
		if ratio := *result.Volume.VolumeRatio; ratio >= m.Alerts.VolumeMultiple {
			alerts = append(alerts, fmt.Sprintf("ALERT: %s volume is %.1fx its average", result.Symbol, ratio))
		}
	}
	return alerts
}

func evaluateAlert(rule model.AlertRule, price float64) (string, bool) {
	switch rule.Direction {
	case model.AlertAbove:
		if price >= rule.Target {
			return fmt.Sprintf("ALERT: %s is at $%.2f, above target $%.2f", rule.Symbol, price, rule.Target), true
		}
	case model.AlertBelow:
		if price <= rule.Target {
			return fmt.Sprintf("ALERT: %s is at $%.2f, below target $%.2f", rule.Symbol, price, rule.Target), true
		}
	}
	return "", false
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
