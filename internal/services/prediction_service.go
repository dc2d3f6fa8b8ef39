package services

import (
	"fmt"

	"github.com/gaineafrica/farmrecords/internal/models"
	"github.com/gaineafrica/farmrecords/internal/types"
	"gorm.io/gorm"
)

// PredictionInput carries an upstream-generated prediction to store.
type PredictionInput struct {
	UserID        *string            `json:"user_id"`
	Crop          *string            `json:"crop"`
	YieldEstimate *types.FlexFloat64 `json:"yield_estimate"`
	MarketPrice   *types.FlexFloat64 `json:"market_price"`
}

// CreatePrediction stores a prediction fact. Append-only; predictions are
// never updated or deleted.
func CreatePrediction(db *gorm.DB, in PredictionInput) (*models.Prediction, error) {
	if in.UserID == nil || *in.UserID == "" ||
		in.Crop == nil || *in.Crop == "" ||
		in.YieldEstimate == nil || in.MarketPrice == nil {
		return nil, types.NewValidationError("Missing required fields", "predictions.validation.input")
	}

	prediction := models.Prediction{
		UserID:        *in.UserID,
		Crop:          *in.Crop,
		YieldEstimate: in.YieldEstimate.Float64(),
		MarketPrice:   in.MarketPrice.Float64(),
	}
	if err := db.Create(&prediction).Error; err != nil {
		return nil, fmt.Errorf("failed to create prediction: %w", err)
	}

	return &prediction, nil
}

// ListPredictions returns all stored predictions in insertion order.
func ListPredictions(db *gorm.DB) ([]models.Prediction, error) {
	predictions := make([]models.Prediction, 0)
	if err := db.Order("prediction_id ASC").Find(&predictions).Error; err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}
