package models

import (
	"time"
)

// MarketData is a single observed market price for a crop.
type MarketData struct {
	MarketDataID  uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CropType      string    `gorm:"size:100;not null" json:"crop_type"`
	Price         float64   `gorm:"not null" json:"price"`
	DataTimestamp time.Time `gorm:"autoCreateTime" json:"data_timestamp"`
	Source        string    `gorm:"size:255" json:"source"`
}

// TableName overrides the table name for MarketData
func (MarketData) TableName() string {
	return "market_data"
}
