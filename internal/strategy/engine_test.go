package strategy

import (
	"testing"

	"TickerWatch/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestEvaluate_AllBullish(t *testing.T) {
	// oversold(+2) + bullish MACD(+1) + uptrend(+2) + price>SMA50(+1) = 6
	result := &model.AnalysisResult{
		Technical: &model.TechnicalIndicators{
			RSISignal:     "oversold",
			MACDCrossover: "bullish",
			PriceVsSMA50:  ptr(7.5),
		},
		Trend: &model.TrendAnalysis{OverallTrend: "strong_uptrend"},
	}
	rec := Evaluate(result)
	if rec.Score != 6 {
		t.Errorf("expected score 6, got %d", rec.Score)
	}
	if rec.Recommendation != "STRONG BUY" {
		t.Errorf("expected STRONG BUY, got %s", rec.Recommendation)
	}
	if rec.Confidence != 90 {
		t.Errorf("expected confidence 90, got %d", rec.Confidence)
	}
	if len(rec.Signals) != 4 {
		t.Errorf("expected 4 signals, got %d: %v", len(rec.Signals), rec.Signals)
	}
}

func TestEvaluate_AllBearish(t *testing.T) {
	result := &model.AnalysisResult{
		Technical: &model.TechnicalIndicators{
			RSISignal:     "overbought",
			MACDCrossover: "bearish",
			PriceVsSMA50:  ptr(-8),
		},
		Trend: &model.TrendAnalysis{OverallTrend: "strong_downtrend"},
	}
	rec := Evaluate(result)
	if rec.Score != -6 {
		t.Errorf("expected score -6, got %d", rec.Score)
	}
	if rec.Recommendation != "STRONG SELL" {
		t.Errorf("expected STRONG SELL, got %s", rec.Recommendation)
	}
	if rec.Confidence != 90 {
		t.Errorf("expected confidence 90, got %d", rec.Confidence)
	}
}

func TestEvaluate_NeutralIsHold(t *testing.T) {
	result := &model.AnalysisResult{
		Technical: &model.TechnicalIndicators{
			RSISignal:    "neutral",
			PriceVsSMA50: ptr(1.2),
		},
		Trend: &model.TrendAnalysis{OverallTrend: "sideways"},
	}
	rec := Evaluate(result)
	if rec.Score != 0 {
		t.Errorf("expected score 0, got %d", rec.Score)
	}
	if rec.Recommendation != "HOLD" {
		t.Errorf("expected HOLD, got %s", rec.Recommendation)
	}
	if rec.Confidence != 0 {
		t.Errorf("expected confidence 0, got %d", rec.Confidence)
	}
	if len(rec.Signals) != 0 {
		t.Errorf("expected no signals, got %v", rec.Signals)
	}
}

func TestEvaluate_MissingBundles(t *testing.T) {
	rec := Evaluate(&model.AnalysisResult{})
	if rec.Score != 0 || rec.Recommendation != "HOLD" {
		t.Errorf("expected neutral HOLD for empty result, got %d %s", rec.Score, rec.Recommendation)
	}
}

func TestEvaluate_UptrendMessageCarriesLabel(t *testing.T) {
	result := &model.AnalysisResult{
		Trend: &model.TrendAnalysis{OverallTrend: "uptrend"},
	}
	rec := Evaluate(result)
	if len(rec.Signals) != 1 || rec.Signals[0] != "Price in uptrend" {
		t.Errorf("unexpected signals: %v", rec.Signals)
	}
}

func TestEvaluate_SMA50ThresholdIsExclusive(t *testing.T) {
	// Exactly +5% / -5% must not trigger.
	for _, dev := range []float64{5, -5} {
		result := &model.AnalysisResult{
			Technical: &model.TechnicalIndicators{PriceVsSMA50: ptr(dev)},
		}
		rec := Evaluate(result)
		if rec.Score != 0 {
			t.Errorf("deviation %v: expected score 0, got %d", dev, rec.Score)
		}
	}
}

func TestMapLabel_AllBoundaries(t *testing.T) {
	tests := []struct {
		score int
		label string
	}{
		{6, "STRONG BUY"},
		{4, "STRONG BUY"},
		{3, "BUY"},
		{2, "BUY"},
		{1, "HOLD"},
		{0, "HOLD"},
		{-1, "HOLD"},
		{-2, "SELL"},
		{-3, "SELL"},
		{-4, "STRONG SELL"},
		{-6, "STRONG SELL"},
	}
	for _, tt := range tests {
		if got := mapLabel(tt.score); got != tt.label {
			t.Errorf("score %d: expected %q, got %q", tt.score, tt.label, got)
		}
	}
}

func TestEvaluate_ConfidenceCaps(t *testing.T) {
	// |score| = 6 → 90; a hypothetical larger score caps at 100, which the
	// rule set cannot exceed, so verify via the cap branch with score -6
	// plus the formula's symmetry.
	result := &model.AnalysisResult{
		Technical: &model.TechnicalIndicators{
			RSISignal:     "oversold",
			MACDCrossover: "bullish",
		},
		Trend: &model.TrendAnalysis{OverallTrend: "uptrend"},
	}
	rec := Evaluate(result)
	if rec.Score != 5 || rec.Confidence != 75 {
		t.Errorf("expected score 5 confidence 75, got %d %d", rec.Score, rec.Confidence)
	}
}
