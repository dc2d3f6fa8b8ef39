package models

import (
	"time"
)

// Record represents one season's farming costs and revenue for a crop,
// owned by exactly one user. UserID is fixed at creation and never updated.
type Record struct {
	RecordID   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"type:char(36);not null;index:idx_records_user" json:"-"`
	Crop       string    `gorm:"size:100;not null" json:"crop"`
	Planting   float64   `gorm:"not null;default:0" json:"planting"`
	Weeding    float64   `gorm:"not null;default:0" json:"weeding"`
	Harvesting float64   `gorm:"not null;default:0" json:"harvesting"`
	Storage    float64   `gorm:"not null;default:0" json:"storage"`
	Sales      float64   `gorm:"not null;default:0" json:"sales"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// ProfitOrLoss computes sales minus the sum of the four cost fields.
// The value is derived at read time and never persisted, so it cannot
// drift from the stored inputs. This is the only definition; every
// serialization path goes through it.
func (r *Record) ProfitOrLoss() float64 {
	totalExpenses := r.Planting + r.Weeding + r.Harvesting + r.Storage
	return r.Sales - totalExpenses
}

// TableName overrides the table name for Record
func (Record) TableName() string {
	return "records"
}
