package model

// AlertDirection selects which side of the target price triggers an alert.
type AlertDirection string

const (
	AlertAbove AlertDirection = "above"
	AlertBelow AlertDirection = "below"
)

// AlertRule defines a price alert for a watched symbol.
type AlertRule struct {
	Symbol    string         `json:"symbol"`
	Target    float64        `json:"target"`
	Direction AlertDirection `json:"direction"`
}
