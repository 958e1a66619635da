package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"TickerWatch/internal/model"
)

// DefaultBaseURL is the NASDAQ Data Link API root.
const DefaultBaseURL = "https://data.nasdaq.com/api/v3"

// NasdaqFetcher implements Fetcher against the NASDAQ Data Link dataset API.
// Requests go through a shared rate limiter so watchlist sweeps stay under
// the provider's request quota.
type NasdaqFetcher struct {
	BaseURL       string
	APIKey        string
	Client        *http.Client
	RetryAttempts int
	RetryDelay    time.Duration

	limiter *rate.Limiter
}

// NewNasdaqFetcher creates a fetcher with optional proxy support.
func NewNasdaqFetcher(baseURL, apiKey, proxyURL string, timeout time.Duration) *NasdaqFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &NasdaqFetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		RetryAttempts: 3,
		RetryDelay:    2 * time.Second,
		limiter:       rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

func (f *NasdaqFetcher) Name() string { return "nasdaq" }

// dataset is the relevant slice of the NASDAQ dataset response.
type dataset struct {
	Dataset struct {
		ColumnNames []string `json:"column_names"`
		Data        [][]any  `json:"data"`
	} `json:"dataset"`
	QuandlError *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"quandl_error"`
}

// FetchHistorical returns up to `days` calendar days of daily rows for the
// symbol, newest first, exactly as the provider sends them.
func (f *NasdaqFetcher) FetchHistorical(symbol string, days int) (*model.HistoricalData, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("start_date", start.Format("2006-01-02"))
	params.Set("end_date", end.Format("2006-01-02"))

	ds, err := f.fetchDataset(symbol, params)
	if err != nil {
		return nil, err
	}

	return &model.HistoricalData{
		Symbol:    symbol,
		Columns:   ds.Dataset.ColumnNames,
		Rows:      ds.Dataset.Data,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
	}, nil
}

// FetchQuote maps the latest row into column-name → value form, with column
// names lowercased and spaces replaced by underscores.
func (f *NasdaqFetcher) FetchQuote(symbol string) (model.Quote, error) {
	params := url.Values{}
	params.Set("rows", "1")

	ds, err := f.fetchDataset(symbol, params)
	if err != nil {
		return nil, err
	}
	if len(ds.Dataset.Data) == 0 {
		return nil, fmt.Errorf("no quote rows for %s", symbol)
	}

	latest := ds.Dataset.Data[0]
	quote := make(model.Quote, len(ds.Dataset.ColumnNames))
	for i, col := range ds.Dataset.ColumnNames {
		if i >= len(latest) {
			break
		}
		key := strings.ReplaceAll(strings.ToLower(col), " ", "_")
		quote[key] = latest[i]
	}
	return quote, nil
}

// FetchCurrentPrice returns the most recent closing price.
func (f *NasdaqFetcher) FetchCurrentPrice(symbol string) (float64, error) {
	params := url.Values{}
	params.Set("rows", "1")

	ds, err := f.fetchDataset(symbol, params)
	if err != nil {
		return 0, err
	}
	if len(ds.Dataset.Data) == 0 {
		return 0, fmt.Errorf("no price rows for %s", symbol)
	}

	closeIdx := 4
	for i, col := range ds.Dataset.ColumnNames {
		if col == "Close" {
			closeIdx = i
			break
		}
	}
	row := ds.Dataset.Data[0]
	if closeIdx >= len(row) {
		return 0, fmt.Errorf("no close column for %s", symbol)
	}
	price, ok := row[closeIdx].(float64)
	if !ok {
		return 0, fmt.Errorf("unexpected close value %v for %s", row[closeIdx], symbol)
	}
	return price, nil
}

func (f *NasdaqFetcher) fetchDataset(symbol string, params url.Values) (*dataset, error) {
	if f.APIKey != "" {
		params.Set("api_key", f.APIKey)
	}
	endpoint := fmt.Sprintf("%s/datasets/WIKI/%s?%s", f.BaseURL, url.PathEscape(symbol), params.Encode())

	var lastErr error
	attempts := f.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if i > 0 {
			log.Printf("[WARN] nasdaq fetch %s failed (attempt %d/%d): %v, retrying in %v",
				symbol, i, attempts, lastErr, f.RetryDelay)
			time.Sleep(f.RetryDelay)
		}
		if err := f.limiter.Wait(context.Background()); err != nil {
			return nil, err
		}
		ds, err := f.doFetch(endpoint)
		if err == nil {
			return ds, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("all %d attempts exhausted: %w", attempts, lastErr)
}

func (f *NasdaqFetcher) doFetch(endpoint string) (*dataset, error) {
	resp, err := f.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("nasdaq fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nasdaq read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nasdaq: status %d, body: %s", resp.StatusCode, string(body))
	}

	var ds dataset
	if err := json.Unmarshal(body, &ds); err != nil {
		return nil, fmt.Errorf("nasdaq decode: %w", err)
	}
	if ds.QuandlError != nil {
		return nil, fmt.Errorf("nasdaq api error %s: %s", ds.QuandlError.Code, ds.QuandlError.Message)
	}
	return &ds, nil
}
