package model

// HistoricalData holds a raw dataset slice as returned by the data provider.
// Rows arrive newest-first and keep whatever cell types the provider sent
// (date strings, numbers, nulls); extraction happens in the analyzer.
type HistoricalData struct {
	Symbol    string   `json:"symbol"`
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"data"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

// Quote maps normalized column names to the latest row's values.
type Quote map[string]any
