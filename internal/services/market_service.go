package services

import (
	"fmt"

	"github.com/gaineafrica/farmrecords/internal/models"
	"github.com/gaineafrica/farmrecords/internal/types"
	"gorm.io/gorm"
)

// MarketDataInput carries a single observed crop market price.
type MarketDataInput struct {
	CropType *string            `json:"crop_type"`
	Price    *types.FlexFloat64 `json:"price"`
	Source   *string            `json:"source"`
}

// CreateMarketData stores one market price observation.
func CreateMarketData(db *gorm.DB, in MarketDataInput) (*models.MarketData, error) {
	if in.CropType == nil || *in.CropType == "" || in.Price == nil {
		return nil, types.NewValidationError("Missing required fields", "market.validation.input")
	}
	if in.Price.Float64() < 0 {
		return nil, types.NewValidationError("price must be a non-negative number", "market.validation.number")
	}

	entry := models.MarketData{
		CropType: *in.CropType,
		Price:    in.Price.Float64(),
	}
	if in.Source != nil {
		entry.Source = *in.Source
	}
	if err := db.Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to create market data: %w", err)
	}

	return &entry, nil
}

// ListMarketData returns all stored market observations in insertion order.
func ListMarketData(db *gorm.DB) ([]models.MarketData, error) {
	entries := make([]models.MarketData, 0)
	if err := db.Order("market_data_id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list market data: %w", err)
	}
	return entries, nil
}
