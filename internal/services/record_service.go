// record_service.go
//
// Farm record keeping and crop prediction data service for Gaine Africa
// Copyright (c) 2026 Gaine Africa
//
// This file is part of farmrecords.
// farmrecords is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// farmrecords is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with farmrecords.
// If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"errors"
	"fmt"

	"github.com/gaineafrica/farmrecords/internal/models"
	"github.com/gaineafrica/farmrecords/internal/types"
	"gorm.io/gorm"
)

// RecordInput carries record fields for create and partial update. Pointer
// fields distinguish absent from zero; numeric fields accept JSON numbers or
// numeric strings and reject NaN/Inf during unmarshal.
type RecordInput struct {
	Crop       *string            `json:"crop"`
	Planting   *types.FlexFloat64 `json:"planting"`
	Weeding    *types.FlexFloat64 `json:"weeding"`
	Harvesting *types.FlexFloat64 `json:"harvesting"`
	Storage    *types.FlexFloat64 `json:"storage"`
	Sales      *types.FlexFloat64 `json:"sales"`
}

// RecordOutput is the serialization shape for a record. ProfitOrLoss is
// computed from the stored fields on every read and never persisted.
type RecordOutput struct {
	ID           uint64  `json:"id"`
	Crop         string  `json:"crop"`
	Planting     float64 `json:"planting"`
	Weeding      float64 `json:"weeding"`
	Harvesting   float64 `json:"harvesting"`
	Storage      float64 `json:"storage"`
	Sales        float64 `json:"sales"`
	ProfitOrLoss float64 `json:"profit_or_loss"`
}

var errRecordNotFound = types.NewNotFoundError("Record not found", "records.notfound")

func recordOutput(r models.Record) RecordOutput {
	return RecordOutput{
		ID:           r.RecordID,
		Crop:         r.Crop,
		Planting:     r.Planting,
		Weeding:      r.Weeding,
		Harvesting:   r.Harvesting,
		Storage:      r.Storage,
		Sales:        r.Sales,
		ProfitOrLoss: r.ProfitOrLoss(),
	}
}

func validateAmount(name string, v float64) error {
	if v < 0 {
		return types.NewValidationError(
			fmt.Sprintf("%s must be a non-negative number", name),
			"records.validation.number",
		)
	}
	return nil
}

// CreateRecord validates and persists a new record owned by userID. Every
// business field is required at creation; the owner is fixed here and is
// never updatable afterwards.
func CreateRecord(db *gorm.DB, userID string, in RecordInput) (RecordOutput, error) {
	if in.Crop == nil || *in.Crop == "" ||
		in.Planting == nil || in.Weeding == nil || in.Harvesting == nil ||
		in.Storage == nil || in.Sales == nil {
		return RecordOutput{}, types.NewValidationError("Missing required fields", "records.validation.input")
	}

	amounts := map[string]float64{
		"planting":   in.Planting.Float64(),
		"weeding":    in.Weeding.Float64(),
		"harvesting": in.Harvesting.Float64(),
		"storage":    in.Storage.Float64(),
		"sales":      in.Sales.Float64(),
	}
	for _, name := range []string{"planting", "weeding", "harvesting", "storage", "sales"} {
		if err := validateAmount(name, amounts[name]); err != nil {
			return RecordOutput{}, err
		}
	}

	record := models.Record{
		UserID:     userID,
		Crop:       *in.Crop,
		Planting:   amounts["planting"],
		Weeding:    amounts["weeding"],
		Harvesting: amounts["harvesting"],
		Storage:    amounts["storage"],
		Sales:      amounts["sales"],
	}
	if err := db.Create(&record).Error; err != nil {
		return RecordOutput{}, fmt.Errorf("failed to create record: %w", err)
	}

	return recordOutput(record), nil
}

// ListRecords returns all records for the owner in insertion order.
// An empty result is a valid, non-error outcome.
func ListRecords(db *gorm.DB, userID string) ([]RecordOutput, error) {
	var records []models.Record
	err := db.Where("user_id = ?", userID).
		Order("record_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	outputs := make([]RecordOutput, 0, len(records))
	for _, r := range records {
		outputs = append(outputs, recordOutput(r))
	}
	return outputs, nil
}

// GetRecord retrieves one record by the (recordID, userID) pair. A record
// that exists under a different owner reads as not found.
func GetRecord(db *gorm.DB, userID string, recordID uint64) (RecordOutput, error) {
	var record models.Record
	err := db.Where("record_id = ? AND user_id = ?", recordID, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordOutput{}, errRecordNotFound
		}
		return RecordOutput{}, fmt.Errorf("failed to look up record: %w", err)
	}
	return recordOutput(record), nil
}

// UpdateRecord overwrites only the fields present in the input. Each present
// numeric field is validated independently before anything is written.
func UpdateRecord(db *gorm.DB, userID string, recordID uint64, in RecordInput) (RecordOutput, error) {
	updates := map[string]interface{}{}
	if in.Crop != nil {
		if *in.Crop == "" {
			return RecordOutput{}, types.NewValidationError("crop must not be empty", "records.validation.input")
		}
		updates["crop"] = *in.Crop
	}
	present := map[string]*types.FlexFloat64{
		"planting":   in.Planting,
		"weeding":    in.Weeding,
		"harvesting": in.Harvesting,
		"storage":    in.Storage,
		"sales":      in.Sales,
	}
	for _, name := range []string{"planting", "weeding", "harvesting", "storage", "sales"} {
		if present[name] == nil {
			continue
		}
		v := present[name].Float64()
		if err := validateAmount(name, v); err != nil {
			return RecordOutput{}, err
		}
		updates[name] = v
	}

	var record models.Record
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_id = ? AND user_id = ?", recordID, userID).
			First(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errRecordNotFound
			}
			return fmt.Errorf("failed to look up record: %w", err)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&record).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}
		return nil
	})
	if err != nil {
		return RecordOutput{}, err
	}

	return recordOutput(record), nil
}

// DeleteRecord permanently removes a record owned by userID.
func DeleteRecord(db *gorm.DB, userID string, recordID uint64) error {
	result := db.Where("record_id = ? AND user_id = ?", recordID, userID).
		Delete(&models.Record{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errRecordNotFound
	}
	return nil
}
