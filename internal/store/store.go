package store

import "TickerWatch/internal/model"

// Store persists watchlist membership and alert rules across restarts.
// Analysis results are deliberately not persisted.
type Store interface {
	AddSymbol(symbol string) error
	RemoveSymbol(symbol string) error
	Watchlist() ([]string, error)

	SetAlert(rule model.AlertRule) error
	RemoveAlert(symbol string) error
	Alerts() ([]model.AlertRule, error)

	Close() error
}
