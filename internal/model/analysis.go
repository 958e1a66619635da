package model

import "time"

// TechnicalIndicators holds the core windowed indicators. Pointer fields are
// nil when the price series is shorter than the indicator's window; a nil
// field serializes as a missing key, never as zero.
type TechnicalIndicators struct {
	CurrentPrice      float64  `json:"current_price"`
	SMA10             *float64 `json:"sma_10,omitempty"`
	SMA20             *float64 `json:"sma_20,omitempty"`
	SMA50             *float64 `json:"sma_50,omitempty"`
	SMA200            *float64 `json:"sma_200,omitempty"`
	EMA12             *float64 `json:"ema_12,omitempty"`
	EMA26             *float64 `json:"ema_26,omitempty"`
	RSI               *float64 `json:"rsi,omitempty"`
	RSISignal         string   `json:"rsi_signal"`
	MACD              *float64 `json:"macd,omitempty"`
	MACDSignal        *float64 `json:"macd_signal,omitempty"`
	MACDHistogram     *float64 `json:"macd_histogram,omitempty"`
	MACDCrossover     string   `json:"macd_crossover,omitempty"`
	BollingerUpper    *float64 `json:"bollinger_upper,omitempty"`
	BollingerMiddle   *float64 `json:"bollinger_middle,omitempty"`
	BollingerLower    *float64 `json:"bollinger_lower,omitempty"`
	BollingerPosition string   `json:"bollinger_position"`
	SupportLevel      *float64 `json:"support_level,omitempty"`
	ResistanceLevel   *float64 `json:"resistance_level,omitempty"`
	PriceVsSMA50      *float64 `json:"price_vs_sma50,omitempty"`
	PriceVsSMA200     *float64 `json:"price_vs_sma200,omitempty"`
}

// VolumeAnalysis summarizes trading volume behavior.
type VolumeAnalysis struct {
	CurrentVolume float64   `json:"current_volume"`
	AverageVolume float64   `json:"average_volume"`
	VolumeRatio   *float64  `json:"volume_ratio,omitempty"`
	VolumeTrend   *float64  `json:"volume_trend,omitempty"`
	VolumeSignal  string    `json:"volume_signal"`
	OBV           []float64 `json:"obv"`
	OBVTrend      *float64  `json:"obv_trend,omitempty"`
}

// TrendAnalysis holds regression slopes and price changes over fixed horizons.
type TrendAnalysis struct {
	ShortTermTrend  *float64 `json:"short_term_trend,omitempty"`
	MediumTermTrend *float64 `json:"medium_term_trend,omitempty"`
	LongTermTrend   *float64 `json:"long_term_trend,omitempty"`
	OverallTrend    string   `json:"overall_trend"`
	PriceChange1D   *float64 `json:"price_change_1d,omitempty"`
	PriceChange5D   *float64 `json:"price_change_5d,omitempty"`
	PriceChange30D  *float64 `json:"price_change_30d,omitempty"`
	HighestPrice    float64  `json:"highest_price"`
	LowestPrice     float64  `json:"lowest_price"`
	PriceRange      float64  `json:"price_range"`
}

// VolatilityAnalysis holds return dispersion metrics.
type VolatilityAnalysis struct {
	Volatility           float64  `json:"volatility"`
	AnnualizedVolatility float64  `json:"annualized_volatility"`
	VolatilityPercent    float64  `json:"volatility_percent"`
	ATR                  *float64 `json:"atr,omitempty"`
	VolatilityRating     string   `json:"volatility_rating"`
}

// MomentumAnalysis holds rate-of-change style metrics.
type MomentumAnalysis struct {
	ROC10            *float64 `json:"roc_10,omitempty"`
	ROC20            *float64 `json:"roc_20,omitempty"`
	Momentum10       *float64 `json:"momentum_10,omitempty"`
	Stochastic       *float64 `json:"stochastic,omitempty"`
	StochasticSignal string   `json:"stochastic_signal"`
	MomentumRating   string   `json:"momentum_rating"`
}

// Recommendation is the fused buy/hold/sell verdict.
type Recommendation struct {
	Recommendation string   `json:"recommendation"`
	Score          int      `json:"score"`
	Signals        []string `json:"signals"`
	Confidence     int      `json:"confidence"`
}

// AnalysisResult aggregates everything one Analyze call produces. A fresh
// value is built per call; nothing is shared between invocations.
type AnalysisResult struct {
	Symbol         string               `json:"symbol"`
	Timestamp      time.Time            `json:"timestamp"`
	DataPoints     int                  `json:"data_points"`
	CurrentPrice   float64              `json:"current_price"`
	Technical      *TechnicalIndicators `json:"technical,omitempty"`
	Volume         *VolumeAnalysis      `json:"volume,omitempty"`
	Trend          *TrendAnalysis       `json:"trend,omitempty"`
	Volatility     *VolatilityAnalysis  `json:"volatility,omitempty"`
	Momentum       *MomentumAnalysis    `json:"momentum,omitempty"`
	Recommendation *Recommendation      `json:"recommendation,omitempty"`
	Summary        string               `json:"summary"`
}
