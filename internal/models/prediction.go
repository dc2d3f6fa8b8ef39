package models

import (
	"time"
)

// Prediction stores a crop yield/price prediction produced upstream.
// Append-only; predictions are opaque numeric facts, not computed here.
type Prediction struct {
	PredictionID   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         string    `gorm:"type:char(36);not null" json:"user_id"`
	Crop           string    `gorm:"size:100;not null" json:"crop"`
	YieldEstimate  float64   `gorm:"not null" json:"yield_estimate"`
	MarketPrice    float64   `gorm:"not null" json:"market_price"`
	PredictionDate time.Time `gorm:"autoCreateTime" json:"prediction_date"`
}

// TableName overrides the table name for Prediction
func (Prediction) TableName() string {
	return "predictions"
}
