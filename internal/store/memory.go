package store

import (
	"sync"

	"TickerWatch/internal/model"
)

// MemoryStore keeps watchlist and alerts in memory; used when no database
// path is configured.
type MemoryStore struct {
	mu      sync.Mutex
	symbols []string
	alerts  map[string]model.AlertRule
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{alerts: make(map[string]model.AlertRule)}
}

func (s *MemoryStore) AddSymbol(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.symbols {
		if existing == symbol {
			return nil
		}
	}
	s.symbols = append(s.symbols, symbol)
	return nil
}

func (s *MemoryStore) RemoveSymbol(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.symbols {
		if existing == symbol {
			s.symbols = append(s.symbols[:i], s.symbols[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *MemoryStore) Watchlist() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.symbols))
	copy(out, s.symbols)
	return out, nil
}

func (s *MemoryStore) SetAlert(rule model.AlertRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alerts[rule.Symbol] = rule
	return nil
}

func (s *MemoryStore) RemoveAlert(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.alerts, symbol)
	return nil
}

func (s *MemoryStore) Alerts() ([]model.AlertRule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rules := make([]model.AlertRule, 0, len(s.alerts))
	for _, rule := range s.alerts {
		rules = append(rules, rule)
	}
	return rules, nil
}

func (s *MemoryStore) Close() error { return nil }
