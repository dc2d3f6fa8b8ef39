// user_service.go
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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput carries the registration payload. Pointer fields distinguish
// absent from zero; numeric fields accept JSON numbers or numeric strings.
type RegisterInput struct {
	Name     *string            `json:"name"`
	Email    *string            `json:"email"`
	Password *string            `json:"password"`
	Phone    *string            `json:"phone"`
	Age      *types.FlexUint64  `json:"age"`
	Location *string            `json:"location"`
	LandSize *types.FlexFloat64 `json:"land_size"`
	Crop     *string            `json:"crop"`
}

// UpdateUserInput is the allow-listed profile update subset.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserSummary is the public listing shape: id and name only.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegisterUser validates the full profile, enforces email uniqueness, hashes
// the password, and persists the new user. All validation happens strictly
// before the row is written; the plaintext password is never stored.
func RegisterUser(db *gorm.DB, in RegisterInput) (*models.User, error) {
	if in.Name == nil || *in.Name == "" ||
		in.Email == nil || *in.Email == "" ||
		in.Password == nil || *in.Password == "" ||
		in.Phone == nil || *in.Phone == "" ||
		in.Age == nil ||
		in.Location == nil || *in.Location == "" ||
		in.LandSize == nil ||
		in.Crop == nil || *in.Crop == "" {
		return nil, types.NewValidationError("Missing required fields", "users.validation.input")
	}

	if in.LandSize.Float64() < 0 {
		return nil, types.NewValidationError("land_size must be a non-negative number", "users.validation.number")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if count > 0 {
		return nil, types.NewConflictError("Email already in use", "users.conflict.email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:         *in.Name,
		Email:        *in.Email,
		PasswordHash: string(hash),
		Phone:        *in.Phone,
		Age:          uint(in.Age.Uint64()),
		Location:     *in.Location,
		LandSize:     in.LandSize.Float64(),
		Crop:         *in.Crop,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// AuthenticateUser verifies credentials against the stored hash. Unknown
// email and wrong password produce the same error so callers cannot learn
// whether an email is registered.
func AuthenticateUser(db *gorm.DB, email, password string) (*models.User, error) {
	invalid := types.NewAuthError("Invalid email or password", "auth.credentials.invalid")

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, invalid
	}

	return &user, nil
}

// GetUser retrieves a user by ID.
func GetUser(db *gorm.DB, userID string) (*models.User, error) {
	var user models.User
	err := db.Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("User not found", "users.notfound")
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &user, nil
}

// ListUsers returns id and name for every user, in insertion order.
func ListUsers(db *gorm.DB) ([]UserSummary, error) {
	var users []models.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, UserSummary{ID: u.UserID, Name: u.Name})
	}
	return summaries, nil
}

// UpdateUser applies the allow-listed profile subset. An email change
// re-validates uniqueness against every other account.
func UpdateUser(db *gorm.DB, userID string, in UpdateUserInput) (*models.User, error) {
	user, err := GetUser(db, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, types.NewValidationError("name must not be empty", "users.validation.input")
		}
		updates["name"] = *in.Name
	}
	if in.Email != nil && *in.Email != user.Email {
		if *in.Email == "" {
			return nil, types.NewValidationError("email must not be empty", "users.validation.input")
		}
		var count int64
		if err := db.Model(&models.User{}).
			Where("email = ? AND user_id <> ?", *in.Email, userID).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if count > 0 {
			return nil, types.NewConflictError("Email already in use", "users.conflict.email")
		}
		updates["email"] = *in.Email
	}

	if len(updates) == 0 {
		return user, nil
	}

	if err := db.Model(user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
