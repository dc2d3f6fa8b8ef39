package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered farmer account.
// PasswordHash never appears in serialized output.
type User struct {
	UserID       string    `gorm:"type:char(36);primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	Phone        string    `gorm:"size:20;not null" json:"phone"`
	Age          uint      `gorm:"not null" json:"age"`
	Location     string    `gorm:"size:150;not null" json:"location"`
	LandSize     float64   `gorm:"not null" json:"land_size"`
	Crop         string    `gorm:"size:100;not null" json:"crop"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
	Records      []Record  `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate assigns the server-side stable identifier.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
