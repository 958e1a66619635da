package collector

import (
	"fmt"
	"time"

	"TickerWatch/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// When Prices is set it is treated as a chronological close series; rows are
// emitted newest-first like the real provider.
type MockFetcher struct {
	Price   float64
	Prices  []float64
	Volumes []float64

	// FetchErr, when set, is returned by every call.
	FetchErr error

	// Calls counts FetchHistorical invocations, for cache tests.
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

var mockColumns = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

func (m *MockFetcher) FetchHistorical(symbol string, days int) (*model.HistoricalData, error) {
	m.Calls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}

	prices := m.Prices
	if prices == nil {
		prices = generateMockSeries(m.Price, days)
	}
	volumes := m.Volumes

	rows := make([][]any, 0, len(prices))
	for i := len(prices) - 1; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -(len(prices) - 1 - i)).Format("2006-01-02")
		var vol any = 1000000.0
		if volumes != nil && i < len(volumes) {
			vol = volumes[i]
		}
		rows = append(rows, []any{date, prices[i] * 0.999, prices[i] * 1.005, prices[i] * 0.995, prices[i], vol})
	}

	return &model.HistoricalData{Symbol: symbol, Columns: mockColumns, Rows: rows}, nil
}

func (m *MockFetcher) FetchQuote(symbol string) (model.Quote, error) {
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	price, err := m.FetchCurrentPrice(symbol)
	if err != nil {
		return nil, err
	}
	return model.Quote{"close": price}, nil
}

func (m *MockFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	if m.FetchErr != nil {
		return 0, m.FetchErr
	}
	if len(m.Prices) > 0 {
		return m.Prices[len(m.Prices)-1], nil
	}
	if m.Price == 0 {
		return 0, fmt.Errorf("mock: no price configured for %s", symbol)
	}
	return m.Price, nil
}

func generateMockSeries(basePrice float64, count int) []float64 {
	if basePrice == 0 {
		basePrice = 100
	}
	if count <= 0 {
		count = 90
	}
	prices := make([]float64, count)
	for i := 0; i < count; i++ {
		prices[i] = basePrice * (1 + float64(i-count/2)*0.001)
	}
	return prices
}
