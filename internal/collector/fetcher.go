package collector

import "TickerWatch/internal/model"

// Fetcher defines the interface for retrieving market data.
type Fetcher interface {
	FetchHistorical(symbol string, days int) (*model.HistoricalData, error)
	FetchQuote(symbol string) (model.Quote, error)
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}
